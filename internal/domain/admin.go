package domain

// Admin rows keep the password column as stored. The legacy data holds it in
// plaintext and the login check compares it verbatim; do not hash here without
// migrating the table first.
type Admin struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"`
}
