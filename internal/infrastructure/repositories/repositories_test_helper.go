package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

// newMarketDB opens a sqlite database with every marketplace table created.
func newMarketDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := newTestDB(t)
	createUserTable(t, db)
	createProductTable(t, db)
	createConversationTables(t, db)
	createPaymentMethodTable(t, db)
	createTransactionTable(t, db)
	createReportTable(t, db)
	return db
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		university TEXT,
		role TEXT NOT NULL DEFAULT 'student',
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		campus_location TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

// Money columns are TEXT so sqlite keeps the two-decimal form intact.
func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE products (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		price TEXT NOT NULL,
		category TEXT NOT NULL,
		condition TEXT NOT NULL,
		location TEXT NOT NULL,
		image_url TEXT,
		status TEXT NOT NULL DEFAULT 'available',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createConversationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE conversations (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		buyer_id TEXT NOT NULL,
		seller_id TEXT NOT NULL,
		last_message_at DATETIME,
		created_at DATETIME,
		UNIQUE (product_id, buyer_id, seller_id)
	);`)
	mustExec(t, db, `CREATE TABLE messages (
		id TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL,
		sender_id TEXT NOT NULL,
		content TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createPaymentMethodTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payment_methods (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		last4 TEXT NOT NULL,
		brand TEXT NOT NULL,
		expiry_month INTEGER NOT NULL,
		expiry_year INTEGER NOT NULL,
		is_default BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		buyer_id TEXT NOT NULL,
		seller_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		amount TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'completed',
		payment_method_id TEXT,
		created_at DATETIME
	);`)
}

func createReportTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE reports (
		id TEXT PRIMARY KEY,
		product_id TEXT NOT NULL,
		reporter_id TEXT NOT NULL,
		reason TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME
	);`)
}

func seedUser(t *testing.T, db *gorm.DB, email string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	mustExec(t, db, `INSERT INTO users (id, email, password, first_name, last_name, role, is_verified, created_at, updated_at)
		VALUES (?, ?, 'hash', 'Test', 'User', 'student', 0, ?, ?)`, id.String(), email, now, now)
	return id
}

func seedProduct(t *testing.T, db *gorm.DB, ownerID uuid.UUID, price, status string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	now := time.Now().UTC()
	mustExec(t, db, `INSERT INTO products (id, user_id, title, description, price, category, condition, location, status, created_at, updated_at)
		VALUES (?, ?, 'Desk Lamp', 'Warm white LED lamp', ?, 'furniture', 'good', 'North Campus', ?, ?, ?)`,
		id.String(), ownerID.String(), price, status, now, now)
	return id
}
