package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/skillbridge/internal/career/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/career/internal/repository/dao"
)

type QuizRepo interface {
	SaveQuestion(ctx context.Context, q domain.Question) (int64, error)
	DeleteQuestion(ctx context.Context, id int64) error
	// List 管理端，带草稿
	List(ctx context.Context) ([]domain.Question, error)
	// ActiveList C 端，只有启用的题目，选项都带上
	ActiveList(ctx context.Context) ([]domain.Question, error)
	OptionsByIDs(ctx context.Context, ids []int64) ([]domain.Option, error)
}

type quizRepo struct {
	quizDao dao.QuizDAO
}

func NewQuizRepo(quizDao dao.QuizDAO) QuizRepo {
	return &quizRepo{quizDao: quizDao}
}

func (q *quizRepo) SaveQuestion(ctx context.Context, question domain.Question) (int64, error) {
	opts := slice.Map(question.Options, func(idx int, src domain.Option) dao.QuestionOption {
		return q.optionToEntity(src)
	})
	return q.quizDao.SaveQuestion(ctx, dao.Question{
		Id:       question.ID,
		Content:  question.Content,
		Sequence: question.Sequence,
		Status:   question.Status.ToUint8(),
	}, opts)
}

func (q *quizRepo) DeleteQuestion(ctx context.Context, id int64) error {
	return q.quizDao.DeleteQuestion(ctx, id)
}

func (q *quizRepo) List(ctx context.Context) ([]domain.Question, error) {
	qs, err := q.quizDao.List(ctx)
	if err != nil {
		return nil, err
	}
	return q.attachOptions(ctx, qs)
}

func (q *quizRepo) ActiveList(ctx context.Context) ([]domain.Question, error) {
	qs, err := q.quizDao.ActiveList(ctx)
	if err != nil {
		return nil, err
	}
	return q.attachOptions(ctx, qs)
}

func (q *quizRepo) OptionsByIDs(ctx context.Context, ids []int64) ([]domain.Option, error) {
	opts, err := q.quizDao.OptionsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(opts, func(idx int, src dao.QuestionOption) domain.Option {
		return q.optionToDomain(src)
	}), nil
}

func (q *quizRepo) attachOptions(ctx context.Context, qs []dao.Question) ([]domain.Question, error) {
	if len(qs) == 0 {
		return []domain.Question{}, nil
	}
	qids := slice.Map(qs, func(idx int, src dao.Question) int64 {
		return src.Id
	})
	opts, err := q.quizDao.OptionsByQids(ctx, qids)
	if err != nil {
		return nil, err
	}
	optMap := make(map[int64][]domain.Option, len(qs))
	for _, opt := range opts {
		optMap[opt.Qid] = append(optMap[opt.Qid], q.optionToDomain(opt))
	}
	return slice.Map(qs, func(idx int, src dao.Question) domain.Question {
		return domain.Question{
			ID:       src.Id,
			Content:  src.Content,
			Sequence: src.Sequence,
			Status:   domain.QuestionStatus(src.Status),
			Options:  optMap[src.Id],
		}
	}), nil
}

func (q *quizRepo) optionToEntity(opt domain.Option) dao.QuestionOption {
	return dao.QuestionOption{
		Id:      opt.ID,
		Qid:     opt.Qid,
		Content: opt.Content,
		Points: sqlx.JsonColumn[map[string]int]{
			Val:   opt.Points,
			Valid: len(opt.Points) > 0,
		},
	}
}

func (q *quizRepo) optionToDomain(opt dao.QuestionOption) domain.Option {
	return domain.Option{
		ID:      opt.Id,
		Qid:     opt.Qid,
		Content: opt.Content,
		Points:  opt.Points.Val,
	}
}
