package seed

import (
	"context"
	"fmt"
	"os"

	"HistoryAtlas/internal/model"
	"HistoryAtlas/internal/repository"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Fixture 预置数据文件结构（YAML），实体与关联表各一个列表
type Fixture struct {
	Countries        []model.Country         `yaml:"countries"`
	Languages        []model.Language        `yaml:"languages"`
	People           []model.Person          `yaml:"people"`
	EventTypes       []model.EventType       `yaml:"event_types"`
	Events           []model.Event           `yaml:"events"`
	CountryLanguages []model.CountryLanguage `yaml:"country_languages"`
	PersonLanguages  []model.PersonLanguage  `yaml:"person_languages"`
	PersonEvents     []model.PersonEvent     `yaml:"person_events"`
	CountryEvents    []model.CountryEvent    `yaml:"country_events"`
	CountryPeople    []model.CountryPerson   `yaml:"country_people"`
}

// Options 导入选项
type Options struct {
	Reset bool // 导入前清空全部表
}

// ReadFile 读取并解析 YAML 预置数据
func ReadFile(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取预置数据失败: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("解析预置数据失败: %w", err)
	}
	return &f, nil
}

// Loader 将预置数据写入数据库（仅供离线 seed 命令使用，HTTP 侧只读）
type Loader struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewLoader(db *gorm.DB, logger *logrus.Logger) *Loader {
	return &Loader{db: db, logger: logger}
}

// Load 在单个事务内按依赖顺序写入；任何关联行引用了不存在的实体则整体回滚
func (l *Loader) Load(ctx context.Context, f *Fixture, opts Options) error {
	return l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if opts.Reset {
			if err := reset(tx); err != nil {
				return err
			}
		}

		// 1. 实体
		if err := createAll(tx, f.Countries); err != nil {
			return err
		}
		if err := createAll(tx, f.Languages); err != nil {
			return err
		}
		if err := createAll(tx, f.People); err != nil {
			return err
		}
		if err := createAll(tx, f.EventTypes); err != nil {
			return err
		}

		c := newRefChecker(ctx, repository.NewEntityRepository(tx))
		for _, e := range f.Events {
			if err := c.eventType(e.TypeID); err != nil {
				return fmt.Errorf("event %q: %w", e.Name, err)
			}
		}
		if err := createAll(tx, f.Events); err != nil {
			return err
		}

		// 2. 关联表
		for _, r := range f.CountryLanguages {
			if err := firstErr(c.country(r.CountryID), c.language(r.LanguageID)); err != nil {
				return fmt.Errorf("country_language: %w", err)
			}
		}
		for _, r := range f.PersonLanguages {
			if err := firstErr(c.person(r.PersonID), c.language(r.LanguageID)); err != nil {
				return fmt.Errorf("person_language: %w", err)
			}
		}
		for _, r := range f.PersonEvents {
			if err := firstErr(c.person(r.PersonID), c.event(r.EventID)); err != nil {
				return fmt.Errorf("person_event: %w", err)
			}
		}
		for _, r := range f.CountryEvents {
			if err := firstErr(c.country(r.CountryID), c.event(r.EventID)); err != nil {
				return fmt.Errorf("country_event: %w", err)
			}
		}
		for _, r := range f.CountryPeople {
			if err := firstErr(c.country(r.CountryID), c.person(r.PersonID)); err != nil {
				return fmt.Errorf("country_person: %w", err)
			}
		}
		if err := createAll(tx, f.CountryLanguages); err != nil {
			return err
		}
		if err := createAll(tx, f.PersonLanguages); err != nil {
			return err
		}
		if err := createAll(tx, f.PersonEvents); err != nil {
			return err
		}
		if err := createAll(tx, f.CountryEvents); err != nil {
			return err
		}
		if err := createAll(tx, f.CountryPeople); err != nil {
			return err
		}

		l.logger.WithFields(logrus.Fields{
			"countries": len(f.Countries),
			"languages": len(f.Languages),
			"people":    len(f.People),
			"events":    len(f.Events),
		}).Info("预置数据导入完成")
		return nil
	})
}

func createAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		var zero T
		return fmt.Errorf("写入 %T 失败: %w", zero, err)
	}
	return nil
}

// reset 逆依赖顺序清空全部表
func reset(tx *gorm.DB) error {
	models := model.AllModels()
	for i := len(models) - 1; i >= 0; i-- {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(models[i]).Error; err != nil {
			return fmt.Errorf("清空 %T 失败: %w", models[i], err)
		}
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// refChecker 通过仓储确认外键目标存在，结果按 (表, id) 缓存
type refChecker struct {
	ctx   context.Context
	repo  repository.EntityRepository
	known map[string]map[uint64]struct{}
}

func newRefChecker(ctx context.Context, repo repository.EntityRepository) *refChecker {
	return &refChecker{ctx: ctx, repo: repo, known: make(map[string]map[uint64]struct{})}
}

func (c *refChecker) check(kind string, id uint64, lookup func() error) error {
	if _, ok := c.known[kind][id]; ok {
		return nil
	}
	if err := lookup(); err != nil {
		return err
	}
	if c.known[kind] == nil {
		c.known[kind] = make(map[uint64]struct{})
	}
	c.known[kind][id] = struct{}{}
	return nil
}

func (c *refChecker) country(id uint64) error {
	return c.check("country", id, func() error {
		_, err := c.repo.GetCountryByID(c.ctx, id)
		return err
	})
}

func (c *refChecker) language(id uint64) error {
	return c.check("language", id, func() error {
		_, err := c.repo.GetLanguageByID(c.ctx, id)
		return err
	})
}

func (c *refChecker) person(id uint64) error {
	return c.check("person", id, func() error {
		_, err := c.repo.GetPersonByID(c.ctx, id)
		return err
	})
}

func (c *refChecker) event(id uint64) error {
	return c.check("event", id, func() error {
		_, err := c.repo.GetEventByID(c.ctx, id)
		return err
	})
}

func (c *refChecker) eventType(id uint64) error {
	return c.check("event_type", id, func() error {
		_, err := c.repo.GetEventTypeByID(c.ctx, id)
		return err
	})
}
