package model

// 关联表均为纯多对多连接，不对 (a, b) 组合做唯一约束，重复连接会原样保留

// CountryLanguage 国家-语言，附带使用人口占比
type CountryLanguage struct {
	ID         uint64  `gorm:"column:id;primaryKey;autoIncrement" json:"id" yaml:"id"`
	CountryID  uint64  `gorm:"column:country_id;type:bigint;not null;index" json:"country_id" yaml:"country_id"`
	LanguageID uint64  `gorm:"column:language_id;type:bigint;not null;index" json:"language_id" yaml:"language_id"`
	Percentage float64 `gorm:"column:percentage;not null;comment:使用占比" json:"percentage" yaml:"percentage"`
}

// PersonLanguage 人物-语言
type PersonLanguage struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id" yaml:"id"`
	PersonID   uint64 `gorm:"column:person_id;type:bigint;not null;index" json:"person_id" yaml:"person_id"`
	LanguageID uint64 `gorm:"column:language_id;type:bigint;not null;index" json:"language_id" yaml:"language_id"`
}

// PersonEvent 人物-事件，附带人物在事件中的角色
type PersonEvent struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id" yaml:"id"`
	PersonID uint64 `gorm:"column:person_id;type:bigint;not null;index" json:"person_id" yaml:"person_id"`
	EventID  uint64 `gorm:"column:event_id;type:bigint;not null;index" json:"event_id" yaml:"event_id"`
	Role     string `gorm:"column:role;type:varchar(255);not null;comment:角色" json:"role" yaml:"role"`
}

// CountryEvent 国家-事件
type CountryEvent struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id" yaml:"id"`
	CountryID uint64 `gorm:"column:country_id;type:bigint;not null;index" json:"country_id" yaml:"country_id"`
	EventID   uint64 `gorm:"column:event_id;type:bigint;not null;index" json:"event_id" yaml:"event_id"`
}

// CountryPerson 国家-人物
type CountryPerson struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id" yaml:"id"`
	CountryID uint64 `gorm:"column:country_id;type:bigint;not null;index" json:"country_id" yaml:"country_id"`
	PersonID  uint64 `gorm:"column:person_id;type:bigint;not null;index" json:"person_id" yaml:"person_id"`
}

func (CountryLanguage) TableName() string { return "country_language" }
func (PersonLanguage) TableName() string  { return "person_language" }
func (PersonEvent) TableName() string     { return "person_event" }
func (CountryEvent) TableName() string    { return "country_event" }
func (CountryPerson) TableName() string   { return "country_person" }

// AllModels 按依赖顺序返回全部表模型（供 AutoMigrate 使用）
func AllModels() []interface{} {
	return []interface{}{
		&Country{},
		&Language{},
		&Person{},
		&EventType{},
		&Event{},
		&CountryLanguage{},
		&PersonLanguage{},
		&PersonEvent{},
		&CountryEvent{},
		&CountryPerson{},
	}
}
