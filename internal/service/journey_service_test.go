package service

import (
	"resto_ops_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJourneyStartsAtValues(t *testing.T) {
	e := newEngine(t)

	jp, err := e.journey.Get(staffID)
	require.NoError(t, err)
	assert.Equal(t, model.JourneyStepValues, jp.CurrentStep)
	assert.False(t, jp.ValuesCompleted)
	assert.False(t, jp.HygieneCompleted)
}

func TestCultureAcknowledgmentAdvancesToHygiene(t *testing.T) {
	e := newEngine(t)
	e.mustValue(t, "guest-first")

	require.NoError(t, e.values.Acknowledge(staffID))

	jp, err := e.journey.Get(staffID)
	require.NoError(t, err)
	assert.True(t, jp.ValuesCompleted)
	assert.Equal(t, model.JourneyStepHygiene, jp.CurrentStep)

	// 重复确认无害
	require.NoError(t, e.values.Acknowledge(staffID))
	jp, err = e.journey.Get(staffID)
	require.NoError(t, err)
	assert.Equal(t, model.JourneyStepHygiene, jp.CurrentStep)
}

func TestFoundationCompletionDoesNotTouchJourney(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.journey.OnTierCompleted(staffID, model.TierFoundation))

	jp, err := e.journey.Get(staffID)
	require.NoError(t, err)
	assert.False(t, jp.HygieneCompleted)
	assert.Equal(t, model.JourneyStepValues, jp.CurrentStep)
}

// hygiene 里程碑在 L1/L2/L3 任意一级首次完成时置位
func TestFirstHygieneTierSetsMilestone(t *testing.T) {
	e := newEngine(t)
	e.mustValue(t, "guest-first")
	require.NoError(t, e.values.Acknowledge(staffID))

	require.NoError(t, e.journey.OnTierCompleted(staffID, model.TierL1))

	jp, err := e.journey.Get(staffID)
	require.NoError(t, err)
	assert.True(t, jp.HygieneCompleted)
	assert.Equal(t, model.JourneyStepCertification, jp.CurrentStep)

	// 后续等级完成不再改变里程碑
	require.NoError(t, e.journey.OnTierCompleted(staffID, model.TierL2))
	jp, err = e.journey.Get(staffID)
	require.NoError(t, err)
	assert.Equal(t, model.JourneyStepCertification, jp.CurrentStep)
}

// 棘轮：乱序到达的完成事件不会把 currentStep 往回拉
func TestJourneyNeverMovesBackward(t *testing.T) {
	e := newEngine(t)
	e.mustValue(t, "guest-first")

	// hygiene 先于 values 完成
	require.NoError(t, e.journey.OnTierCompleted(staffID, model.TierL1))
	jp, err := e.journey.Get(staffID)
	require.NoError(t, err)
	assert.Equal(t, model.JourneyStepCertification, jp.CurrentStep)

	// 之后的 values 确认不回退
	require.NoError(t, e.values.Acknowledge(staffID))
	jp, err = e.journey.Get(staffID)
	require.NoError(t, err)
	assert.True(t, jp.ValuesCompleted)
	assert.Equal(t, model.JourneyStepCertification, jp.CurrentStep)
}

// 端到端：完成链自动驱动旅程
func TestCompletionChainUpdatesJourney(t *testing.T) {
	e := newEngine(t)
	quiz := e.mustQuizCourse(t, model.TierL1, 10, false)

	_, err := e.progress.RecordCompletion(staffID, quiz.ID, answersFor(quiz, 9))
	require.NoError(t, err)

	jp, err := e.journey.Get(staffID)
	require.NoError(t, err)
	assert.True(t, jp.HygieneCompleted)
}
