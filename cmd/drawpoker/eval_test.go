package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/drawpoker/poker"
)

func TestEvaluateSingleHand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, evaluate(&out, []string{"KS KH QH QD 2C"}))
	assert.Contains(t, out.String(), "Two Pair")
	assert.Contains(t, out.String(), "primary King")
	assert.Contains(t, out.String(), "secondary Queen")
	assert.NotContains(t, out.String(), "Winner")
}

func TestEvaluateTwoHands(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, evaluate(&out, []string{"KS KH KD 2C 2S", "2H 9H JH 4H AH"}))
	assert.Contains(t, out.String(), "Full House")
	assert.Contains(t, out.String(), "Flush")
	assert.Contains(t, out.String(), "Winner: Player")
}

func TestEvaluateErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, evaluate(&out, nil))
	assert.Error(t, evaluate(&out, []string{"AS", "KS", "QS"}))

	err := evaluate(&out, []string{"AS KS QS JS TS", "AS KS QS JS ZZ"})
	require.ErrorIs(t, err, poker.ErrInvalidCard)
	assert.Contains(t, err.Error(), "dealer hand")
}
