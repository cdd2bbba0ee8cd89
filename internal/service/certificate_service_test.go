package service

import (
	"resto_ops_backend/internal/model"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeFoundation(t *testing.T, e *engine) {
	t.Helper()
	quiz := e.mustQuizCourse(t, model.TierFoundation, 10, false)
	_, err := e.progress.RecordCompletion(staffID, quiz.ID, answersFor(quiz, 9))
	require.NoError(t, err)
}

func TestIssueIfEligibleIsIdempotent(t *testing.T) {
	e := newEngine(t)
	completeFoundation(t, e)

	first, err := e.cert.IssueIfEligible(staffID, model.TierFoundation)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := e.cert.IssueIfEligible(staffID, model.TierFoundation)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first.CertificateNumber, second.CertificateNumber)

	var count int64
	require.NoError(t, e.db.Model(&model.Certificate{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConcurrentIssuanceProducesOneCertificate(t *testing.T) {
	e := newEngine(t)
	completeFoundation(t, e)

	const workers = 8
	numbers := make([]string, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cert, err := e.cert.IssueIfEligible(staffID, model.TierFoundation)
			errs[i] = err
			if cert != nil {
				numbers[i] = cert.CertificateNumber
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.NotEmpty(t, numbers[i])
		assert.Equal(t, numbers[0], numbers[i])
	}

	var count int64
	require.NoError(t, e.db.Model(&model.Certificate{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNoCertificateBeforeTierComplete(t *testing.T) {
	e := newEngine(t)
	quiz := e.mustQuizCourse(t, model.TierFoundation, 10, false)
	e.mustReadingCourse(t, model.TierFoundation, "still open")

	_, err := e.progress.RecordCompletion(staffID, quiz.ID, answersFor(quiz, 10))
	require.NoError(t, err)

	cert, err := e.cert.IssueIfEligible(staffID, model.TierFoundation)
	require.NoError(t, err)
	assert.Nil(t, cert)
}

func TestCertificateExpiryAndSnapshot(t *testing.T) {
	e := newEngine(t)
	completeFoundation(t, e)

	cert, err := e.cert.IssueIfEligible(staffID, model.TierFoundation)
	require.NoError(t, err)
	require.NotNil(t, cert)

	assert.Equal(t, "Foundation", cert.TierName)
	assert.Equal(t, 90, cert.ScoreSnapshot)
	assert.WithinDuration(t, cert.IssuedAt.AddDate(0, 12, 0), cert.ExpiresAt, time.Second)
	assert.Contains(t, cert.CertificateNumber, "CERT-FOUNDATION-")
}

// 纯阅读等级没有测验成绩，快照回退到等级及格线
func TestSnapshotFallsBackToPassMark(t *testing.T) {
	e := newEngine(t)
	reading := e.mustReadingCourse(t, model.TierFoundation, "welcome")

	result, err := e.progress.RecordCompletion(staffID, reading.ID, nil)
	require.NoError(t, err)

	require.NotNil(t, result.Certificate)
	assert.Equal(t, 80, result.Certificate.ScoreSnapshot)
}

func TestValidityClassification(t *testing.T) {
	issued := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	cert := &model.Certificate{
		IssuedAt:  issued,
		ExpiresAt: issued.AddDate(0, 12, 0),
	}

	tests := []struct {
		name string
		now  time.Time
		want model.CertificateValidity
	}{
		{"freshly issued", issued, model.CertificateValid},
		{"six months in", issued.AddDate(0, 6, 0), model.CertificateValid},
		{"31 days before expiry", cert.ExpiresAt.Add(-31 * 24 * time.Hour), model.CertificateValid},
		{"20 days before expiry", cert.ExpiresAt.Add(-20 * 24 * time.Hour), model.CertificateExpiringSoon},
		{"on expiry", cert.ExpiresAt, model.CertificateExpiringSoon},
		{"just past expiry", cert.ExpiresAt.Add(time.Hour), model.CertificateExpired},
		{"400 days after issue", issued.Add(400 * 24 * time.Hour), model.CertificateExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cert.ValidityAt(tt.now))
		})
	}
}

// 随时间前移，分类只会 valid → expiring_soon → expired 单向变化
func TestValidityMonotonic(t *testing.T) {
	issued := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cert := &model.Certificate{
		IssuedAt:  issued,
		ExpiresAt: issued.AddDate(0, 12, 0),
	}

	rank := map[model.CertificateValidity]int{
		model.CertificateValid:        0,
		model.CertificateExpiringSoon: 1,
		model.CertificateExpired:      2,
	}

	prev := -1
	for day := 0; day < 420; day += 5 {
		got := rank[cert.ValidityAt(issued.AddDate(0, 0, day))]
		require.GreaterOrEqual(t, got, prev, "day %d", day)
		prev = got
	}
}

// 过期证书保留并标记为 expired，引擎不删除不撤销
func TestExpiredCertificateStillListed(t *testing.T) {
	e := newEngine(t)
	completeFoundation(t, e)

	cert, err := e.cert.IssueIfEligible(staffID, model.TierFoundation)
	require.NoError(t, err)
	require.NotNil(t, cert)

	cert.IssuedAt = time.Now().AddDate(-2, 0, 0)
	cert.ExpiresAt = time.Now().AddDate(-1, 0, 0)
	require.NoError(t, e.db.Save(cert).Error)

	views, err := e.cert.ListForStaff(staffID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, model.CertificateExpired, views[0].Validity)
}
