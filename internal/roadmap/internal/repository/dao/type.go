package dao

type Base struct {
	Ctime int64
	Utime int64 `gorm:"index"`
}

// Roadmap 学习路线，(uid, rid) 唯一
type Roadmap struct {
	Id int64
	SN string `gorm:"column:sn;type:varchar(64);unique"`
	// 激活位上的唯一约束交给事务保证，不能建在索引上：
	// 历史路线的 active 都是 false
	Uid int64 `gorm:"uniqueIndex:uk_uid_rid;index:idx_uid_active,priority:1"`
	Rid int64 `gorm:"uniqueIndex:uk_uid_rid"`
	// 生成时方向名字的冗余
	RoleTitle string `gorm:"type:varchar(512)"`
	// 1-正常 2-归档
	Status uint8 `gorm:"type:tinyint(3)"`
	Active bool  `gorm:"index:idx_uid_active,priority:2"`
	// 生成时的总周数估算，含同类折扣
	TotalWeeks int
	Base
}

func (Roadmap) TableName() string {
	return "roadmap"
}

// RoadmapItem 学习项，sequence 在一条路线内从 0 连续编号且唯一
type RoadmapItem struct {
	Id       int64
	Rmid     int64 `gorm:"uniqueIndex:uk_rmid_seq"`
	Sequence int   `gorm:"uniqueIndex:uk_rmid_seq"`
	Sid      int64
	// 技能目录的冗余，生成时固化
	Name     string `gorm:"type:varchar(512)"`
	Category string `gorm:"type:varchar(32)"`
	// 学到哪一档 rank
	TargetRank uint8
	// 1-pending 2-in_progress 3-completed
	Status uint8 `gorm:"type:tinyint(3);index"`
	// 1-low 2-medium 3-high
	Priority       uint8
	EstimatedWeeks int
	ActualWeeks    int
	// 毫秒时间戳，0 表示还没发生
	StartTime int64
	EndTime   int64
	Base
}

func (RoadmapItem) TableName() string {
	return "roadmap_item"
}
