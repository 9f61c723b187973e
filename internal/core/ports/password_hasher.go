package ports

// PasswordHasher turns a plaintext secret into the digest that is stored in
// place of the password.
type PasswordHasher interface {
	Digest(plaintext string) (string, error)
	Matches(digest, plaintext string) bool
}
