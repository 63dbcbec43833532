package api

import (
	"fmt"

	"HistoryAtlas/internal/web"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RouterOptions 路由构建选项
type RouterOptions struct {
	PProf bool // 注册 /debug/pprof
}

// NewRouter 构建 gin 引擎并注册全部只读路由
func NewRouter(db *gorm.DB, logger *logrus.Logger, opts RouterOptions) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("加载页面模板失败: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// 注册ppof 方便调试和监测性能问题
	if opts.PProf {
		pprof.Register(r)
	}

	catalog := NewCatalogHandler(db, logger)
	r.GET("/", catalog.Index)
	r.GET("/countries", catalog.ListCountries)
	r.GET("/countries/:id", catalog.GetCountry)
	r.GET("/people", catalog.ListPeople)
	r.GET("/people/:id", catalog.GetPerson)
	r.GET("/events", catalog.ListEvents)
	r.GET("/events/:id", catalog.GetEvent)
	r.GET("/languages", catalog.ListLanguages)
	r.GET("/languages/:id", catalog.GetLanguage)

	health := NewHealthHandler(db, logger)
	r.GET("/healthz", health.Healthz)

	r.NoRoute(func(c *gin.Context) {
		catalog.notFound(c, "no such page: "+c.Request.URL.Path)
	})
	return r, nil
}
