package schema

// OrderResource は注文リソースのフォーム・テーブル定義。
func OrderResource() Resource {
	return Resource{
		Name:           "orders",
		NavigationIcon: "shopping-bag",
		Form: Form{
			Sections: []Section{
				{
					Title:   "Order Information",
					Columns: 2,
					Fields: []Field{
						{
							Name:       "user_id",
							Label:      "Customer",
							Type:       FieldSelect,
							Required:   true,
							OptionsURL: "/admin/users/options",
						},
						{
							Name:     "payment_method",
							Type:     FieldSelect,
							Required: true,
							Options: []Option{
								{Value: "credit_card", Label: "Credit Card"},
								{Value: "paypal", Label: "PayPal"},
								{Value: "bank_transfer", Label: "Bank Transfer"},
								{Value: "cod", Label: "Cash on Delivery"},
							},
						},
						{
							Name:     "payment_status",
							Type:     FieldSelect,
							Required: true,
							Default:  "pending",
							Options: []Option{
								{Value: "pending", Label: "Pending"},
								{Value: "paid", Label: "Paid"},
								{Value: "failed", Label: "Failed"},
							},
						},
						{
							Name:     "status",
							Type:     FieldToggleButtons,
							Required: true,
							Default:  "new",
							Options: []Option{
								{Value: "new", Label: "New"},
								{Value: "processing", Label: "Processing"},
								{Value: "shipped", Label: "Shipped"},
								{Value: "delivered", Label: "Delivered"},
								{Value: "canceled", Label: "Canceled"},
							},
						},
						{
							Name:     "currency",
							Type:     FieldSelect,
							Required: true,
							Default:  "USD",
							Options: []Option{
								{Value: "INR", Label: "INR"},
								{Value: "USD", Label: "USD"},
								{Value: "EUR", Label: "EUR"},
								{Value: "GBP", Label: "GBP"},
							},
						},
						{
							Name: "shipping_method",
							Type: FieldSelect,
							Options: []Option{
								{Value: "fedex", Label: "FedEx"},
								{Value: "ups", Label: "UPS"},
								{Value: "amazon", Label: "Amazon"},
							},
						},
						{
							Name: "notes",
							Type: FieldTextarea,
						},
					},
				},
				{
					Title: "Order Items",
					Fields: []Field{
						{
							Name: "items",
							Type: FieldRepeater,
							Fields: []Field{
								{
									Name:       "product_id",
									Label:      "Product",
									Type:       FieldSelect,
									Required:   true,
									Reactive:   true,
									Distinct:   true,
									OptionsURL: "/admin/products/options",
									Span:       4,
								},
								{
									Name:     "quantity",
									Type:     FieldNumber,
									Required: true,
									Reactive: true,
									Min:      intPtr(1),
									Default:  "1",
									Span:     2,
								},
								{
									Name:     "unit_amount",
									Type:     FieldNumber,
									Required: true,
									Disabled: true,
									Span:     3,
								},
								{
									Name:     "total_amount",
									Type:     FieldNumber,
									Required: true,
									Disabled: true,
									Span:     3,
								},
							},
						},
						{
							Name:  "grand_total",
							Label: "Grand Total",
							Type:  FieldPlaceholder,
						},
					},
				},
			},
		},
		Table: Table{
			Columns: []Column{
				{Name: "user.name", Label: "Customer", Type: ColumnText, Sortable: true, Searchable: true},
				{Name: "grand_total", Label: "Grand Total", Type: ColumnCurrency, Sortable: true},
				{Name: "payment_method", Type: ColumnText, Sortable: true, Searchable: true},
				{Name: "payment_status", Type: ColumnText, Sortable: true, Searchable: true},
				{Name: "currency", Type: ColumnText, Sortable: true, Searchable: true},
				{Name: "shipping_method", Type: ColumnText, Sortable: true, Searchable: true},
				{
					Name:     "status",
					Type:     ColumnSelect,
					Sortable: true,
					Options: []Option{
						{Value: "new", Label: "New"},
						{Value: "processing", Label: "Processing"},
						{Value: "shipped", Label: "Shipped"},
						{Value: "delivered", Label: "Delivered"},
						{Value: "canceled", Label: "Canceled"},
					},
				},
				{Name: "created_at", Type: ColumnDateTime, Sortable: true, Toggleable: true, HiddenByDefault: true},
				{Name: "updated_at", Type: ColumnDateTime, Sortable: true, Toggleable: true, HiddenByDefault: true},
			},
			Actions: []string{"view", "edit", "delete"},
		},
	}
}
