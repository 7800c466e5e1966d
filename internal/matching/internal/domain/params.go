package domain

// Params 匹配引擎的全部可调参数。
// 零值不可用，经 DefaultParams 取默认值后按配置覆盖。
type Params struct {
	// 重要程度权重
	HighWeight   float64 `yaml:"highWeight"`
	MediumWeight float64 `yaml:"mediumWeight"`
	LowWeight    float64 `yaml:"lowWeight"`

	// 每个目标等级的基准学习周数
	BeginnerWeeks     int `yaml:"beginnerWeeks"`
	IntermediateWeeks int `yaml:"intermediateWeeks"`
	AdvancedWeeks     int `yaml:"advancedWeeks"`
	ExpertWeeks       int `yaml:"expertWeeks"`

	// InsufficientFactor 已具备但未达标时的周数折减系数
	InsufficientFactor float64 `yaml:"insufficientFactor"`
	// CategoryDiscount 同类技能超过一个时该类小计的折减系数
	CategoryDiscount float64 `yaml:"categoryDiscount"`
	// OptionalBonusCap 加分项全覆盖时的最大加成
	OptionalBonusCap float64 `yaml:"optionalBonusCap"`
	// PopularThreshold 热度达到该值的缺口直接提为高优先级
	PopularThreshold int `yaml:"popularThreshold"`

	// 求职准备程度阈值
	ReadyThreshold   float64 `yaml:"readyThreshold"`
	PartialThreshold float64 `yaml:"partialThreshold"`
	// RecommendCutoff 岗位推荐的最低匹配度
	RecommendCutoff float64 `yaml:"recommendCutoff"`
}

func DefaultParams() Params {
	return Params{
		HighWeight:         3,
		MediumWeight:       2,
		LowWeight:          1,
		BeginnerWeeks:      2,
		IntermediateWeeks:  4,
		AdvancedWeeks:      8,
		ExpertWeeks:        12,
		InsufficientFactor: 0.5,
		CategoryDiscount:   0.8,
		OptionalBonusCap:   10,
		PopularThreshold:   70,
		ReadyThreshold:     80,
		PartialThreshold:   50,
		RecommendCutoff:    30,
	}
}

func (p Params) ImportanceWeight(i Importance) float64 {
	switch i {
	case ImportanceHigh:
		return p.HighWeight
	case ImportanceMedium:
		return p.MediumWeight
	default:
		return p.LowWeight
	}
}

func (p Params) BaseWeeks(l Level) int {
	switch l {
	case LevelExpert:
		return p.ExpertWeeks
	case LevelAdvanced:
		return p.AdvancedWeeks
	case LevelIntermediate:
		return p.IntermediateWeeks
	default:
		return p.BeginnerWeeks
	}
}

func (p Params) Readiness(percentage float64) Readiness {
	switch {
	case percentage >= p.ReadyThreshold:
		return ReadinessJobReady
	case percentage >= p.PartialThreshold:
		return ReadinessPartiallyReady
	default:
		return ReadinessNotReady
	}
}
