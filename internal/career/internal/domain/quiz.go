package domain

// Question 职业探索测评的一道题
type Question struct {
	ID      int64
	Content string
	// Sequence 展示顺序，越小越靠前
	Sequence int
	Status   QuestionStatus
	Options  []Option
}

type QuestionStatus uint8

const (
	QuestionStatusUnknown QuestionStatus = 0
	QuestionStatusDraft   QuestionStatus = 1
	QuestionStatusActive  QuestionStatus = 2
)

func (s QuestionStatus) ToUint8() uint8 {
	return uint8(s)
}

// Option 测评选项，Points 是各个类别的加分
type Option struct {
	ID      int64
	Qid     int64
	Content string
	// Points 键是 Category 的字符串值
	Points map[string]int
}

// DiscoveryResult 测评结果，取累计得分最高的两个类别
type DiscoveryResult struct {
	// Categories 按得分从高到低
	Categories []Category
	// Scores 各类别的累计得分
	Scores map[string]int
	// Roles 命中类别下的热门方向
	Roles []Role
}
