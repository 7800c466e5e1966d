package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

type QuizDAO interface {
	// SaveQuestion 选项整组替换，和题目在一个事务里
	SaveQuestion(ctx context.Context, q Question, opts []QuestionOption) (int64, error)
	DeleteQuestion(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Question, error)
	ActiveList(ctx context.Context) ([]Question, error)
	OptionsByQids(ctx context.Context, qids []int64) ([]QuestionOption, error)
	OptionsByIDs(ctx context.Context, ids []int64) ([]QuestionOption, error)
}

type GORMQuizDAO struct {
	db *egorm.Component
}

func NewQuizDAO(db *egorm.Component) QuizDAO {
	return &GORMQuizDAO{db: db}
}

func (g *GORMQuizDAO) SaveQuestion(ctx context.Context, q Question, opts []QuestionOption) (int64, error) {
	qid := q.Id
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q.Ctime = now
		q.Utime = now
		res := tx.Save(&q)
		if res.Error != nil {
			return res.Error
		}
		qid = q.Id
		err := tx.Where("qid = ?", qid).Delete(&QuestionOption{}).Error
		if err != nil {
			return err
		}
		for i := range opts {
			opts[i].Id = 0
			opts[i].Qid = qid
			opts[i].Ctime = now
			opts[i].Utime = now
		}
		if len(opts) == 0 {
			return nil
		}
		return tx.Create(&opts).Error
	})
	return qid, err
}

func (g *GORMQuizDAO) DeleteQuestion(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("qid = ?", id).Delete(&QuestionOption{}).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Question{}).Error
	})
}

func (g *GORMQuizDAO) List(ctx context.Context) ([]Question, error) {
	var res []Question
	err := g.db.WithContext(ctx).
		Order("sequence ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMQuizDAO) ActiveList(ctx context.Context) ([]Question, error) {
	var res []Question
	err := g.db.WithContext(ctx).
		Where("status = ?", QuestionStatusActive).
		Order("sequence ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMQuizDAO) OptionsByQids(ctx context.Context, qids []int64) ([]QuestionOption, error) {
	var res []QuestionOption
	err := g.db.WithContext(ctx).
		Where("qid IN ?", qids).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMQuizDAO) OptionsByIDs(ctx context.Context, ids []int64) ([]QuestionOption, error) {
	var res []QuestionOption
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}
