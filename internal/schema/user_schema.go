package schema

// UserResource はユーザーリソースのフォーム・テーブル定義。
func UserResource() Resource {
	return Resource{
		Name:           "users",
		NavigationIcon: "user-circle",
		Form: Form{
			Sections: []Section{
				{
					Title: "User",
					Fields: []Field{
						{
							Name:     "name",
							Type:     FieldText,
							Required: true,
						},
						{
							Name:     "email",
							Type:     FieldText,
							Required: true,
							Unique:   true,
						},
						{
							Name:     "password",
							Type:     FieldPassword,
							Required: true,
						},
						{
							Name:     "email_verified_at",
							Label:    "Date",
							Type:     FieldDate,
							Required: true,
						},
					},
				},
			},
		},
		Table: Table{
			Columns: []Column{
				{Name: "name", Label: "Name", Type: ColumnText},
				{Name: "email", Label: "Email", Type: ColumnText},
				{Name: "email_verified_at", Label: "Date", Type: ColumnDateTime},
				{Name: "created_at", Label: "Created At", Type: ColumnDateTime},
			},
			Actions: []string{"view", "edit", "delete"},
		},
	}
}
