package repository

import (
	"database/sql"
	"errors"

	"github.com/isdelr/accounts-api/internal/models"
)

// ErrNotFound is returned when a lookup matches no user.
var ErrNotFound = errors.New("user not found")

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	FindByID(id int64) (models.User, error)
	FindByEmail(email string) (models.User, error)
	FindAll() ([]models.User, error)
	Create(user *models.User) error
	Update(user models.User) error
	Delete(id int64) error
}

// SQLiteUserRepository implements UserRepository over a database/sql
// connection pool.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a new SQLiteUserRepository.
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// FindByID retrieves a single user by their ID.
func (r *SQLiteUserRepository) FindByID(id int64) (models.User, error) {
	row := r.db.QueryRow("SELECT id, name, email, password_hash, created_at FROM users WHERE id = ?", id)
	return scanUser(row)
}

// FindByEmail retrieves a single user by their email.
func (r *SQLiteUserRepository) FindByEmail(email string) (models.User, error) {
	row := r.db.QueryRow("SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?", email)
	return scanUser(row)
}

// FindAll retrieves every user, ordered by id.
func (r *SQLiteUserRepository) FindAll() ([]models.User, error) {
	rows, err := r.db.Query("SELECT id, name, email, password_hash, created_at FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Create inserts a new user and assigns the store-generated id.
func (r *SQLiteUserRepository) Create(user *models.User) error {
	stmt, err := r.db.Prepare("INSERT INTO users(name, email, password_hash) VALUES(?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	res, err := stmt.Exec(user.Name, user.Email, user.PasswordHash)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// Update overwrites a user's stored fields.
func (r *SQLiteUserRepository) Update(user models.User) error {
	_, err := r.db.Exec(
		"UPDATE users SET name = ?, email = ?, password_hash = ? WHERE id = ?",
		user.Name, user.Email, user.PasswordHash, user.ID,
	)
	return err
}

// Delete removes a user from the database.
func (r *SQLiteUserRepository) Delete(id int64) error {
	_, err := r.db.Exec("DELETE FROM users WHERE id = ?", id)
	return err
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
