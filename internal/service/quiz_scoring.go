package service

import (
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/util"
)

// QuizAnswers 提交的答案，题目ID -> 选项下标
type QuizAnswers map[uint]int

// ScoreQuiz 对一份提交评分，返回正确率百分比。
// 每题等权，四舍五入（round half up），无部分得分、无倒扣。
// 提交必须恰好覆盖每道题一次，否则返回 ErrIncompleteSubmission 且不评分。
func ScoreQuiz(questions []model.CourseQuestion, answers QuizAnswers) (int, error) {
	if len(questions) == 0 {
		return 0, util.ErrIncompleteSubmission
	}
	if len(answers) != len(questions) {
		return 0, util.ErrIncompleteSubmission
	}

	correct := 0
	for _, q := range questions {
		chosen, ok := answers[q.ID]
		if !ok {
			return 0, util.ErrIncompleteSubmission
		}
		if chosen == q.CorrectOption {
			correct++
		}
	}

	// round(100 * correct / total)，整数运算实现 round half up
	total := len(questions)
	percent := (200*correct + total) / (2 * total)
	return percent, nil
}

// QuizPassed 及格判定：percent >= 课程生效及格线
func QuizPassed(course *model.Course, percent int) bool {
	return percent >= course.PassMark()
}
