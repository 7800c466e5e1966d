package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 这个算是 user 专属的
var ErrUserDuplicate = errors.New("用户已经注册")

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	UpdateInterests(ctx context.Context, uid int64, interests []string) error
	UpdateTargetRole(ctx context.Context, uid, rid int64, role string) error
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Updates(&u).Error
}

func (ud *GORMUserDAO) UpdateInterests(ctx context.Context, uid int64, interests []string) error {
	return ud.db.WithContext(ctx).Model(&User{}).Where("id = ?", uid).
		Updates(map[string]any{
			"interests": sqlx.JsonColumn[[]string]{Val: interests, Valid: true},
			"utime":     time.Now().UnixMilli(),
		}).Error
}

func (ud *GORMUserDAO) UpdateTargetRole(ctx context.Context, uid, rid int64, role string) error {
	return ud.db.WithContext(ctx).Model(&User{}).Where("id = ?", uid).
		Updates(map[string]any{
			"target_rid":  rid,
			"target_role": role,
			"utime":       time.Now().UnixMilli(),
		}).Error
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrUserDuplicate
		}
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

type User struct {
	// Id 就是会话里的 uid，登录态在外面建立，这里不自增
	Id       int64  `gorm:"primaryKey"`
	SN       string `gorm:"type:varchar(256);unique"`
	Nickname string
	Avatar   string
	Bio      string `gorm:"type:varchar(4096)"`
	// CurrentTitle 当前职位
	CurrentTitle string
	// ExperienceYears 工作年限
	ExperienceYears uint8
	// Interests 兴趣方向列表
	Interests sqlx.JsonColumn[[]string] `gorm:"type:varchar(1024)"`
	// TargetRid 选定的目标职业方向
	TargetRid int64
	// TargetRole 目标职业方向名字的冗余
	TargetRole string
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

func (User) TableName() string {
	return "user"
}
