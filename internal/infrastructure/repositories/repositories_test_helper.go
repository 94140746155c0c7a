package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT,
		google_id TEXT UNIQUE,
		facebook_id TEXT UNIQUE,
		auth_provider TEXT NOT NULL DEFAULT 'email',
		avatar_url TEXT,
		is_admin BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProductTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		main_image_url TEXT NOT NULL,
		price NUMERIC NOT NULL,
		rating NUMERIC NOT NULL DEFAULT 0,
		type_id INTEGER NOT NULL,
		hidden BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE faqs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question TEXT NOT NULL,
		answer TEXT NOT NULL
	);`)
}

func createReviewTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reviews (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		rating INTEGER NOT NULL,
		comment TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE (product_id, user_id)
	);`)
	mustExec(t, db, `CREATE TABLE product_reviews (
		product_id INTEGER NOT NULL,
		review_id INTEGER NOT NULL,
		PRIMARY KEY (product_id, review_id)
	);`)
}

func createPollTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE polls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE poll_options (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		poll_id INTEGER NOT NULL,
		text TEXT NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE poll_user_votes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		poll_id INTEGER NOT NULL,
		option_id INTEGER NOT NULL,
		voted_at DATETIME,
		UNIQUE (user_id, poll_id)
	);`)
}

func createLibraryTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE saved_products (
		user_id INTEGER NOT NULL,
		product_id INTEGER NOT NULL,
		saved_at DATETIME,
		PRIMARY KEY (user_id, product_id)
	);`)
	mustExec(t, db, `CREATE TABLE bought_products (
		user_id INTEGER NOT NULL,
		product_id INTEGER NOT NULL,
		bought_at DATETIME,
		PRIMARY KEY (user_id, product_id)
	);`)
}

func createPersonalOrderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE personal_orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'new',
		price NUMERIC NOT NULL,
		type_id INTEGER NOT NULL,
		age_category_id INTEGER NOT NULL,
		deadline DATETIME,
		created_at DATETIME
	);`)
}

func createProductViewTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE product_views (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id INTEGER NOT NULL,
		user_id INTEGER,
		viewed_at DATETIME
	);`)
}
