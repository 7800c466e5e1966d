package event

import (
	"encoding/json"

	"github.com/ecodeclub/skillbridge/internal/skill/internal/domain"
)

type SkillEvent struct {
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
	Data  string `json:"data"`
}

type Skill struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Difficulty uint8  `json:"difficulty"`
	Desc       string `json:"desc"`
	Popularity int    `json:"popularity"`
	Ctime      int64  `json:"ctime"`
	Utime      int64  `json:"utime"`
}

func newSkill(s domain.Skill) Skill {
	return Skill{
		ID:         s.ID,
		Name:       s.Name,
		Category:   s.Category.String(),
		Difficulty: s.Difficulty,
		Desc:       s.Desc,
		Popularity: s.Popularity,
		Ctime:      s.Ctime.UnixMilli(),
		Utime:      s.Utime.UnixMilli(),
	}
}

func NewSkillEvent(s domain.Skill) SkillEvent {
	data, _ := json.Marshal(newSkill(s))
	return SkillEvent{
		Biz:   "skill",
		BizID: s.ID,
		Data:  string(data),
	}
}
