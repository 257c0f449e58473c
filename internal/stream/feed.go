// Package stream generates a continuous synthetic cash-transaction feed
// and publishes it to Kafka.
package stream

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/cashsight/simulator/internal/models"
)

// Amount bounds for a single synthetic transaction.
const (
	minAmount = 10.0
	maxAmount = 10000.0
)

// Feed draws random cash transactions. It is not safe for concurrent use.
type Feed struct {
	rng  *rand.Rand
	fake *gofakeit.Faker
	now  func() time.Time
}

// NewFeed creates a feed from a seed. The clock is injectable for tests.
func NewFeed(seed int64) *Feed {
	return &Feed{
		rng:  rand.New(rand.NewSource(seed)),
		fake: gofakeit.New(uint64(seed)),
		now:  time.Now,
	}
}

// Next draws one transaction with a fresh id, a company counterparty, and
// an IBAN-shaped cash account.
func (f *Feed) Next() models.StreamedTransaction {
	amount := minAmount + f.rng.Float64()*(maxAmount-minAmount)
	return models.StreamedTransaction{
		TxnID:       uuid.NewString(),
		Amount:      float64(int(amount*100)) / 100,
		Date:        f.now().UTC().Format(time.RFC3339),
		Entity:      f.fake.Company(),
		CashAccount: f.iban(),
	}
}

// iban builds a GB-style account identifier: country code, two check
// digits, a four-letter bank code, and a fourteen-digit account body.
// The check digits are drawn, not computed; consumers treat the value as
// an opaque account label.
func (f *Feed) iban() string {
	bank := make([]byte, 4)
	for i := range bank {
		bank[i] = byte('A' + f.rng.Intn(26))
	}
	body := make([]byte, 14)
	for i := range body {
		body[i] = byte('0' + f.rng.Intn(10))
	}
	return fmt.Sprintf("GB%02d%s%s", f.rng.Intn(100), bank, body)
}
