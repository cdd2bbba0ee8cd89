package service

import (
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() ReflectionSubmission {
	return ReflectionSubmission{
		Learned:     "Proper glove discipline between raw and cooked stations",
		ValueCode:   "guest-first",
		ProudMoment: "Caught a cross-contamination risk before service",
		Visibility:  model.ReflectionPublic,
	}
}

// passCapstone 建一门 L3 压轴课并通过其测验，留在反思门禁前
func passCapstone(t *testing.T, e *engine) *model.Course {
	t.Helper()
	e.mustValue(t, "guest-first")
	capstone := e.mustQuizCourse(t, model.TierL3, 10, true)

	result, err := e.progress.RecordCompletion(staffID, capstone.ID, answersFor(capstone, 10))
	require.NoError(t, err)
	require.True(t, result.AwaitsReflect)
	return capstone
}

func TestReflectionCompletesCapstone(t *testing.T) {
	e := newEngine(t)
	capstone := passCapstone(t, e)

	before := time.Now()
	rec, cert, err := e.reflection.SubmitReflection(staffID, capstone.ID, validSubmission())
	require.NoError(t, err)
	require.NotNil(t, rec)

	progress, err := e.progressRepo.FindByStaffAndCourse(staffID, capstone.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ProgressCompleted, progress.Status)
	assert.Equal(t, model.ProgressPercentDone, progress.ProgressPercent)

	// 完成时间取反思提交时刻，而不是更早的测验通过时刻
	require.NotNil(t, progress.CompletedAt)
	assert.False(t, progress.CompletedAt.Before(before.Truncate(time.Second)))

	// capstone 是 L3 唯一课程，其余等级皆空 → 等级补齐即签发
	require.NotNil(t, cert)
	assert.Equal(t, model.TierL3, cert.Tier)
}

func TestIncompleteReflectionLeavesNoState(t *testing.T) {
	e := newEngine(t)
	capstone := passCapstone(t, e)

	cases := map[string]ReflectionSubmission{
		"blank learned":     {Learned: "   ", ValueCode: "guest-first", ProudMoment: "x"},
		"blank value":       {Learned: "x", ValueCode: "", ProudMoment: "x"},
		"blank proudMoment": {Learned: "x", ValueCode: "guest-first", ProudMoment: "\t\n"},
		"unknown value":     {Learned: "x", ValueCode: "no-such-value", ProudMoment: "x"},
	}

	for name, sub := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := e.reflection.SubmitReflection(staffID, capstone.ID, sub)
			assert.ErrorIs(t, err, util.ErrIncompleteReflection)

			// 没有反思记录落库
			var count int64
			require.NoError(t, e.db.Model(&model.ReflectionRecord{}).Count(&count).Error)
			assert.Zero(t, count)

			// 进度仍被扣在反思门禁前
			progress, err := e.progressRepo.FindByStaffAndCourse(staffID, capstone.ID)
			require.NoError(t, err)
			assert.Equal(t, model.ProgressInProgress, progress.Status)
			assert.Equal(t, model.ProgressPercentReflecting, progress.ProgressPercent)
		})
	}
}

func TestReflectionPersistedBeforeCompletion(t *testing.T) {
	e := newEngine(t)
	capstone := passCapstone(t, e)

	_, _, err := e.reflection.SubmitReflection(staffID, capstone.ID, validSubmission())
	require.NoError(t, err)

	// 完成的压轴课必然有对应反思
	progress, err := e.progressRepo.FindByStaffAndCourse(staffID, capstone.ID)
	require.NoError(t, err)
	require.Equal(t, model.ProgressCompleted, progress.Status)

	rec, err := e.reflRepo.FindByStaffAndCourse(staffID, capstone.ID)
	require.NoError(t, err)
	assert.Equal(t, "guest-first", rec.ValueCode)
}

func TestDuplicateReflectionIsIdempotent(t *testing.T) {
	e := newEngine(t)
	capstone := passCapstone(t, e)

	first, _, err := e.reflection.SubmitReflection(staffID, capstone.ID, validSubmission())
	require.NoError(t, err)

	second, _, err := e.reflection.SubmitReflection(staffID, capstone.ID, validSubmission())
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, e.db.Model(&model.ReflectionRecord{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestReflectionWithoutPendingPass(t *testing.T) {
	e := newEngine(t)
	e.mustValue(t, "guest-first")
	capstone := e.mustQuizCourse(t, model.TierL3, 10, true)

	// 从未通过测验
	_, _, err := e.reflection.SubmitReflection(staffID, capstone.ID, validSubmission())
	assert.ErrorIs(t, err, util.ErrNoPendingPass)

	// 考过但没及格
	_, err = e.progress.RecordCompletion(staffID, capstone.ID, answersFor(capstone, 5))
	require.NoError(t, err)
	_, _, err = e.reflection.SubmitReflection(staffID, capstone.ID, validSubmission())
	assert.ErrorIs(t, err, util.ErrNoPendingPass)
}

func TestReflectionOnNonCapstone(t *testing.T) {
	e := newEngine(t)
	e.mustValue(t, "guest-first")
	quiz := e.mustQuizCourse(t, model.TierFoundation, 10, false)

	_, _, err := e.reflection.SubmitReflection(staffID, quiz.ID, validSubmission())
	assert.ErrorIs(t, err, util.ErrNotCapstone)
}

func TestReflectionUnknownCourse(t *testing.T) {
	e := newEngine(t)
	_, _, err := e.reflection.SubmitReflection(staffID, 424242, validSubmission())
	assert.ErrorIs(t, err, util.ErrUnknownCourse)
}

func TestReflectionVisibilityDefaultsToPublic(t *testing.T) {
	e := newEngine(t)
	capstone := passCapstone(t, e)

	sub := validSubmission()
	sub.Visibility = "whatever"
	rec, _, err := e.reflection.SubmitReflection(staffID, capstone.ID, sub)
	require.NoError(t, err)
	assert.Equal(t, model.ReflectionPublic, rec.Visibility)
}

func TestPrivateReflectionsHiddenFromManagers(t *testing.T) {
	e := newEngine(t)
	capstone := passCapstone(t, e)

	sub := validSubmission()
	sub.Visibility = model.ReflectionPrivate
	_, _, err := e.reflection.SubmitReflection(staffID, capstone.ID, sub)
	require.NoError(t, err)

	visible, total, err := e.reflection.ListVisible(model.Manager, 1, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, visible)

	all, total, err := e.reflection.ListVisible(model.Admin, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, all, 1)
}
