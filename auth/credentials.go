package auth

import "crypto/subtle"

// Credentials is the single static admin email/password pair from
// configuration. There is no user store behind it.
type Credentials struct {
	Email    string
	Password string
}

// Check compares the submitted pair against the configured one in
// constant time.
func (c Credentials) Check(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(c.Email))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password))
	return emailOK&passwordOK == 1
}
