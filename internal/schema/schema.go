// Package schema は管理画面のフォーム・テーブル定義。
// 手続き的なビルダーではなく、データとして列挙した宣言的な設定を
// そのままクライアントに返す。
package schema

type FieldType string

const (
	FieldText          FieldType = "text"
	FieldNumber        FieldType = "number"
	FieldSelect        FieldType = "select"
	FieldTextarea      FieldType = "textarea"
	FieldToggleButtons FieldType = "toggle_buttons"
	FieldDate          FieldType = "date"
	FieldPassword      FieldType = "password"
	FieldRepeater      FieldType = "repeater"
	FieldPlaceholder   FieldType = "placeholder"
	FieldHidden        FieldType = "hidden"
)

type ColumnType string

const (
	ColumnText     ColumnType = "text"
	ColumnDateTime ColumnType = "datetime"
	ColumnSelect   ColumnType = "select"
	ColumnCurrency ColumnType = "currency"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field はフォーム項目1つの宣言。
type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label,omitempty"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required,omitempty"`
	Disabled bool      `json:"disabled,omitempty"`
	Unique   bool      `json:"unique,omitempty"`

	//trueなら値の変更でフォーム再計算のイベントを送る
	Reactive bool `json:"reactive,omitempty"`

	Min     *int64   `json:"min,omitempty"`
	Default string   `json:"default,omitempty"`
	Options []Option `json:"options,omitempty"`

	//relationshipの検索可能セレクトは選択肢をURLから引く
	OptionsURL string `json:"options_url,omitempty"`

	//同じrepeater内で値の重複を許さない
	Distinct bool `json:"distinct,omitempty"`

	//repeaterの行スキーマ
	Fields []Field `json:"fields,omitempty"`

	Span int `json:"span,omitempty"`
}

type Section struct {
	Title   string  `json:"title"`
	Columns int     `json:"columns,omitempty"`
	Fields  []Field `json:"fields"`
}

type Form struct {
	Sections []Section `json:"sections"`
}

// Column はテーブル列1つの宣言。
type Column struct {
	Name            string     `json:"name"`
	Label           string     `json:"label,omitempty"`
	Type            ColumnType `json:"type"`
	Sortable        bool       `json:"sortable,omitempty"`
	Searchable      bool       `json:"searchable,omitempty"`
	Toggleable      bool       `json:"toggleable,omitempty"`
	HiddenByDefault bool       `json:"hidden_by_default,omitempty"`
	Options         []Option   `json:"options,omitempty"`
}

type Table struct {
	Columns []Column `json:"columns"`
	Actions []string `json:"actions"`
}

// Resource はリソース1つ分のフォームとテーブルの宣言。
type Resource struct {
	Name           string `json:"name"`
	NavigationIcon string `json:"navigation_icon,omitempty"`
	Form           Form   `json:"form"`
	Table          Table  `json:"table"`
}

func intPtr(v int64) *int64 {
	return &v
}
