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
		id TEXT PRIMARY KEY,
		address TEXT UNIQUE NOT NULL,
		referrer_address TEXT,
		total_investment TEXT NOT NULL DEFAULT '0',
		total_withdrawn TEXT NOT NULL DEFAULT '0',
		max_withdrawal_limit TEXT NOT NULL DEFAULT '0',
		pending_referral_rewards TEXT NOT NULL DEFAULT '0',
		last_profit_claim_timestamp DATETIME,
		registration_timestamp DATETIME,
		is_registered BOOLEAN NOT NULL DEFAULT TRUE,
		referral_count INTEGER NOT NULL DEFAULT 0
	);`)
}

func createInvestmentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE investments (
		id TEXT PRIMARY KEY,
		user_address TEXT NOT NULL,
		amount TEXT NOT NULL,
		transaction_hash TEXT NOT NULL,
		block_number INTEGER,
		timestamp DATETIME
	);`)
}

func createEarningTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE earnings (
		id TEXT PRIMARY KEY,
		user_address TEXT NOT NULL,
		amount TEXT NOT NULL,
		type TEXT NOT NULL,
		from_user_address TEXT,
		level INTEGER,
		transaction_hash TEXT,
		timestamp DATETIME
	);`)
}

func createReferralTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE referrals (
		id TEXT PRIMARY KEY,
		referrer_address TEXT NOT NULL,
		referred_address TEXT NOT NULL,
		level INTEGER NOT NULL,
		timestamp DATETIME
	);`)
}
