package service

import "context"

// PasswordHasher is the hashing capability the domain depends on but does
// not implement. Hash must produce a bcrypt-shaped string.
type PasswordHasher interface {
	Hash(ctx context.Context, plain string) (string, error)
	Compare(ctx context.Context, plain, hash string) (bool, error)
}
