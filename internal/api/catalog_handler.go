package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"HistoryAtlas/internal/repository"
	"HistoryAtlas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CatalogHandler 列表页 / 详情页。默认渲染 HTML，Accept: application/json 时返回 JSON
type CatalogHandler struct {
	catalogService *service.CatalogService
	logger         *logrus.Logger
}

// NewCatalogHandler 创建 CatalogHandler
func NewCatalogHandler(db *gorm.DB, logger *logrus.Logger) *CatalogHandler {
	svc := service.NewCatalogService(
		repository.NewEntityRepository(db),
		repository.NewRelationRepository(db),
		logger,
	)
	return &CatalogHandler{
		catalogService: svc,
		logger:         logger,
	}
}

// Index 首页 GET /
func (h *CatalogHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// ListCountries 国家列表 GET /countries
func (h *CatalogHandler) ListCountries(c *gin.Context) {
	countries, err := h.catalogService.ListCountries(c.Request.Context())
	if err != nil {
		h.fail(c, "ListCountries", err)
		return
	}
	h.render(c, "countries.html", gin.H{"countries": countries}, countries)
}

// GetCountry 国家详情 GET /countries/:id
func (h *CatalogHandler) GetCountry(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	detail, err := h.catalogService.GetCountryDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "GetCountry", err)
		return
	}
	h.render(c, "country.html", detail, detail)
}

// ListPeople 人物列表 GET /people
func (h *CatalogHandler) ListPeople(c *gin.Context) {
	people, err := h.catalogService.ListPeople(c.Request.Context())
	if err != nil {
		h.fail(c, "ListPeople", err)
		return
	}
	h.render(c, "people.html", gin.H{"people": people}, people)
}

// GetPerson 人物详情 GET /people/:id
func (h *CatalogHandler) GetPerson(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	detail, err := h.catalogService.GetPersonDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "GetPerson", err)
		return
	}
	h.render(c, "person.html", detail, detail)
}

// ListEvents 事件列表 GET /events
func (h *CatalogHandler) ListEvents(c *gin.Context) {
	events, err := h.catalogService.ListEvents(c.Request.Context())
	if err != nil {
		h.fail(c, "ListEvents", err)
		return
	}
	h.render(c, "events.html", gin.H{"events": events}, events)
}

// GetEvent 事件详情 GET /events/:id
func (h *CatalogHandler) GetEvent(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	detail, err := h.catalogService.GetEventDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "GetEvent", err)
		return
	}
	h.render(c, "event.html", detail, detail)
}

// ListLanguages 语言列表 GET /languages
func (h *CatalogHandler) ListLanguages(c *gin.Context) {
	languages, err := h.catalogService.ListLanguages(c.Request.Context())
	if err != nil {
		h.fail(c, "ListLanguages", err)
		return
	}
	h.render(c, "languages.html", gin.H{"languages": languages}, languages)
}

// GetLanguage 语言详情 GET /languages/:id
func (h *CatalogHandler) GetLanguage(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	detail, err := h.catalogService.GetLanguageDetail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "GetLanguage", err)
		return
	}
	h.render(c, "language.html", detail, detail)
}

// parseID 路径参数必须是 int64 范围内的非负整数，否则与未命中一样按 404 处理
func (h *CatalogHandler) parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id > math.MaxInt64 {
		h.notFound(c, "no such record: "+c.Param("id"))
		return 0, false
	}
	return id, true
}

// respond 按 Accept 选择 JSON 或 HTML；无法协商（如 text/plain）时回落到 HTML
func respond(c *gin.Context, status int, htmlName string, htmlData, jsonData any) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(status, jsonData)
		return
	}
	if htmlData == nil {
		htmlData = gin.H{}
	}
	c.HTML(status, htmlName, htmlData)
}

func (h *CatalogHandler) render(c *gin.Context, name string, htmlData, jsonData any) {
	respond(c, http.StatusOK, name, htmlData, jsonData)
}

func (h *CatalogHandler) notFound(c *gin.Context, msg string) {
	respond(c, http.StatusNotFound, "not_found.html", gin.H{"message": msg}, gin.H{"error": msg})
}

// fail 未命中映射为 404，其余存储错误记录日志后返回 500
func (h *CatalogHandler) fail(c *gin.Context, op string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		h.notFound(c, err.Error())
		return
	}
	h.logger.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Error(op + " failed")
	respond(c, http.StatusInternalServerError, "error.html", gin.H{}, gin.H{"error": "internal error"})
}
