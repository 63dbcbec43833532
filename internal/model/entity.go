package model

// Country 国家
type Country struct {
	ID         uint64  `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id" yaml:"id"`
	Name       string  `gorm:"column:name;type:varchar(255);not null;comment:国家名称" json:"name" yaml:"name"`
	Area       float64 `gorm:"column:area;not null;comment:面积" json:"area" yaml:"area"`
	Population int64   `gorm:"column:population;not null;comment:人口" json:"population" yaml:"population"`
}

// Language 语言
type Language struct {
	ID   uint64 `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id" yaml:"id"`
	Name string `gorm:"column:name;type:varchar(255);not null;comment:语言名称" json:"name" yaml:"name"`
}

// Person 人物，DeathYear 为空表示在世或未知
type Person struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id" yaml:"id"`
	Name      string `gorm:"column:name;type:varchar(255);not null;comment:姓名" json:"name" yaml:"name"`
	BirthYear int    `gorm:"column:birth_year;not null;comment:出生年份" json:"birth_year" yaml:"birth_year"`
	DeathYear *int   `gorm:"column:death_year;comment:去世年份" json:"death_year" yaml:"death_year"`
}

// EventType 事件分类
type EventType struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id" yaml:"id"`
	TypeName string `gorm:"column:type_name;type:varchar(255);not null;comment:分类名称" json:"type_name" yaml:"type_name"`
}

// Event 历史事件，EndYear 为空表示仍在进行或未知
type Event struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement;comment:自增主键ID" json:"id" yaml:"id"`
	Name      string `gorm:"column:name;type:varchar(255);not null;comment:事件名称" json:"name" yaml:"name"`
	TypeID    uint64 `gorm:"column:type_id;type:bigint;not null;index;comment:关联事件分类ID" json:"type_id" yaml:"type_id"`
	StartYear int    `gorm:"column:start_year;not null;comment:开始年份" json:"start_year" yaml:"start_year"`
	EndYear   *int   `gorm:"column:end_year;comment:结束年份" json:"end_year" yaml:"end_year"`
}

func (Country) TableName() string   { return "country" }
func (Language) TableName() string  { return "language" }
func (Person) TableName() string    { return "person" }
func (EventType) TableName() string { return "event_type" }
func (Event) TableName() string     { return "event" }
