package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreditCardOffer_EligibleFor(t *testing.T) {
	cap := 750

	openEnded := &CreditCardOffer{MinCreditScore: 600}
	capped := &CreditCardOffer{MinCreditScore: 600, MaxCreditScore: &cap}

	assert.False(t, openEnded.EligibleFor(599))
	assert.True(t, openEnded.EligibleFor(600))
	assert.True(t, openEnded.EligibleFor(850))

	assert.False(t, capped.EligibleFor(599))
	assert.True(t, capped.EligibleFor(600))
	assert.True(t, capped.EligibleFor(750))
	assert.False(t, capped.EligibleFor(751))
}
