package service

import (
	"context"
	"errors"
	"sort"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/skillbridge/internal/career/internal/domain"
	"github.com/ecodeclub/skillbridge/internal/career/internal/repository"
	"github.com/ecodeclub/skillbridge/internal/user"
)

var (
	// ErrInvalidAnswer 空答案，或者选了不存在的选项
	ErrInvalidAnswer = errors.New("无效的测评答案")
	// ErrInvalidQuestion 选项上的加分类别不在类别字典里
	ErrInvalidQuestion = errors.New("无效的测评题目")
)

const (
	// topCategories 测评取累计得分最高的类别个数
	topCategories = 2
	// rolesPerCategory 每个命中类别带回的方向数
	rolesPerCategory = 3
)

//go:generate mockgen -source=./quiz.go -destination=../../mocks/quiz.mock.go -package=careermocks -typed DiscoveryService
type DiscoveryService interface {
	// Questions C 端题目列表，已按展示顺序排好
	Questions(ctx context.Context) ([]domain.Question, error)
	// Submit 汇总选项加分，取前两个类别覆盖兴趣方向，并带回类别下的热门方向
	Submit(ctx context.Context, uid int64, optionIDs []int64) (domain.DiscoveryResult, error)

	// 管理端
	SaveQuestion(ctx context.Context, q domain.Question) (int64, error)
	DeleteQuestion(ctx context.Context, id int64) error
	AdminQuestions(ctx context.Context) ([]domain.Question, error)
}

type discoveryService struct {
	repo    repository.QuizRepo
	roleSvc RoleService
	userSvc user.UserService
}

func NewDiscoveryService(repo repository.QuizRepo,
	roleSvc RoleService,
	userSvc user.UserService) DiscoveryService {
	return &discoveryService{
		repo:    repo,
		roleSvc: roleSvc,
		userSvc: userSvc,
	}
}

func (s *discoveryService) Questions(ctx context.Context) ([]domain.Question, error) {
	return s.repo.ActiveList(ctx)
}

func (s *discoveryService) Submit(ctx context.Context, uid int64, optionIDs []int64) (domain.DiscoveryResult, error) {
	if len(optionIDs) == 0 {
		return domain.DiscoveryResult{}, ErrInvalidAnswer
	}
	ids := make([]int64, 0, len(optionIDs))
	seen := make(map[int64]struct{}, len(optionIDs))
	for _, id := range optionIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	opts, err := s.repo.OptionsByIDs(ctx, ids)
	if err != nil {
		return domain.DiscoveryResult{}, err
	}
	if len(opts) != len(ids) {
		return domain.DiscoveryResult{}, ErrInvalidAnswer
	}
	scores := make(map[string]int)
	for _, opt := range opts {
		for cat, pts := range opt.Points {
			scores[cat] += pts
		}
	}
	cats := make([]domain.Category, 0, len(scores))
	for cat := range scores {
		c := domain.Category(cat)
		if c.Valid() {
			cats = append(cats, c)
		}
	}
	sort.Slice(cats, func(i, j int) bool {
		si, sj := scores[cats[i].String()], scores[cats[j].String()]
		if si != sj {
			return si > sj
		}
		return cats[i] < cats[j]
	})
	if len(cats) > topCategories {
		cats = cats[:topCategories]
	}
	res := domain.DiscoveryResult{
		Categories: cats,
		Scores:     scores,
	}
	if len(cats) == 0 {
		return res, nil
	}
	err = s.userSvc.UpdateInterests(ctx, uid, slice.Map(cats, func(idx int, c domain.Category) string {
		return c.String()
	}))
	if err != nil {
		return domain.DiscoveryResult{}, err
	}
	for _, cat := range cats {
		roles, _, err := s.roleSvc.List(ctx, 0, rolesPerCategory, cat)
		if err != nil {
			return domain.DiscoveryResult{}, err
		}
		res.Roles = append(res.Roles, roles...)
	}
	return res, nil
}

func (s *discoveryService) SaveQuestion(ctx context.Context, q domain.Question) (int64, error) {
	for _, opt := range q.Options {
		for cat := range opt.Points {
			if !domain.Category(cat).Valid() {
				return 0, ErrInvalidQuestion
			}
		}
	}
	if q.Status == domain.QuestionStatusUnknown {
		q.Status = domain.QuestionStatusDraft
	}
	return s.repo.SaveQuestion(ctx, q)
}

func (s *discoveryService) DeleteQuestion(ctx context.Context, id int64) error {
	return s.repo.DeleteQuestion(ctx, id)
}

func (s *discoveryService) AdminQuestions(ctx context.Context) ([]domain.Question, error) {
	return s.repo.List(ctx)
}
