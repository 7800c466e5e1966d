package dao

// Skill 技能库
// 提供接口
// admin:
// - save：创建或者按 id 更新
// - level/save：维护四档等级
// C 端
// - list / detail / popular / categories
// - user 系列：维护用户已具备的技能
type Base struct {
	Ctime int64
	Utime int64 `gorm:"index"`
}

type Skill struct {
	Id int64
	// Name 描述的是什么技能
	Name string `gorm:"unique"`
	// 类别，闭集，入口处校验
	Category string `gorm:"type:varchar(32);index"`
	// 难度档位 1-4
	Difficulty uint8
	// 技能本身的描述
	Desc string
	// 热度 0-100，定时任务重算
	Popularity int `gorm:"index"`
	Base
}

func (Skill) TableName() string {
	return "skill"
}

// SkillLevel 全局的四档水平等级，rank 唯一
type SkillLevel struct {
	Id int64
	// beginner, intermediate, advanced, expert
	Name string `gorm:"type:varchar(32);unique"`
	Rank uint8  `gorm:"unique"`
	Desc string
	Base
}

func (SkillLevel) TableName() string {
	return "skill_level"
}

// UserSkill 用户已具备的技能，uid + sid 唯一。
// 重复添加直接报唯一索引冲突，不允许覆盖。
type UserSkill struct {
	Id  int64
	Uid int64 `gorm:"uniqueIndex:uid_sid"`
	Sid int64 `gorm:"uniqueIndex:uid_sid"`
	// 等级表的 id
	Slid int64
	// 冗余等级的 rank，匹配计算不用再连表
	LevelRank uint8
	// 1-在学 2-已掌握
	Status uint8
	Base
}

func (UserSkill) TableName() string {
	return "user_skill"
}
