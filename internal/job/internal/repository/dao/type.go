package dao

type Base struct {
	Ctime int64
	Utime int64 `gorm:"index"`
}

// Job 在招岗位
type Job struct {
	Id       int64
	Title    string `gorm:"type:varchar(512)"`
	Company  string `gorm:"type:varchar(256);index"`
	Location string `gorm:"type:varchar(256)"`
	Remote   bool
	// 类别，闭集，和职业方向同一套取值
	Category string `gorm:"type:varchar(32);index"`
	// 关联的职业方向，0 表示没有关联
	Rid int64 `gorm:"index"`
	// 月薪范围，单位元
	SalaryMin int64
	SalaryMax int64
	// junior / mid / senior / lead
	Level string `gorm:"type:varchar(32)"`
	// 1-草稿 2-在招 3-过期
	Status uint8 `gorm:"type:tinyint(3);index"`
	// 来源站点和原始链接
	Source  string `gorm:"type:varchar(256)"`
	URL     string `gorm:"type:varchar(1024)"`
	Summary string `gorm:"type:text"`
	// 发布和截止时间，毫秒时间戳，expires_at 为 0 表示长期有效
	PostedAt  int64 `gorm:"index"`
	ExpiresAt int64 `gorm:"index"`
	Base
}

func (Job) TableName() string {
	return "job_posting"
}

// JobSkill 岗位的技能要求，jid + sid 唯一
type JobSkill struct {
	Id  int64
	Jid int64 `gorm:"uniqueIndex:uk_jid_sid"`
	Sid int64 `gorm:"uniqueIndex:uk_jid_sid"`
	// 1-low 2-medium 3-high
	Importance uint8
	// 必备还是加分项
	Required bool
	// 要求的最低等级 rank
	MinRank uint8
	Base
}

func (JobSkill) TableName() string {
	return "job_skill"
}
