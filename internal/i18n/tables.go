package i18n

var tables = map[Language]map[Key]string{
	English: {
		KeyDashboard:                  "Dashboard",
		KeyRevenue:                    "Revenue",
		KeyExpenses:                   "Expenses",
		KeyCalendar:                   "Calendar",
		KeySales:                      "Sales",
		KeyTotalRevenue:               "Total Revenue",
		KeyTotalExpenses:              "Total Expenses",
		KeyProfit:                     "Profit",
		KeyBasedOnIncome:              "Based on all recorded income",
		KeyBasedOnExpenses:            "Based on all recorded expenses",
		KeyRevenueMinusExpenses:       "Revenue minus expenses",
		KeyFinancialOverview:          "Financial Overview",
		KeyMonthlyRevenueVsExpenses:   "Monthly revenue vs expenses.",
		KeyUpcomingAppointments:       "Upcoming Appointments",
		KeyYouHaveXAppointments:       "You have {count} upcoming appointments.",
		KeyNoAppointments:             "No upcoming appointments.",
		KeyLanguage:                   "Language",
		KeyEnglish:                    "English",
		KeyVietnamese:                 "Vietnamese",
		KeyJapanese:                   "Japanese",
		KeyAddRevenue:                 "Add Revenue",
		KeyAddRevenueDesc:             "Record a new source of income.",
		KeySource:                     "Source",
		KeySourcePlaceholder:          "e.g., Client X",
		KeyCategory:                   "Category",
		KeyCategoryPlaceholderRevenue: "e.g., Web Development",
		KeyAmount:                     "Amount",
		KeyDate:                       "Date",
		KeyPickDate:                   "Pick a date",
		KeySaveRevenue:                "Save Revenue",
		KeyRevenueHistory:             "Revenue History",
		KeyRevenueHistoryDesc:         "A log of all your income sources.",
		KeyActions:                    "Actions",
		KeyToggleMenu:                 "Toggle menu",
		KeyEdit:                       "Edit",
		KeyDelete:                     "Delete",
		KeyRevenueAdded:               "Revenue added",
		KeyRevenueAddedDesc:           "{amount} from {source} has been added.",
		KeySourceMin2:                 "Source must be at least 2 characters.",
		KeyCategoryMin2:               "Category must be at least 2 characters.",
		KeyAmountPositive:             "Amount must be a positive number.",
		KeyDateRequired:               "A date is required.",
		KeyInvalidRequestBody:         "The request could not be understood.",
		KeyAddExpense:                 "Add Expense",
		KeyAddExpenseDesc:             "Record a new business expense.",
		KeyItemService:                "Item/Service",
		KeyItemServicePlaceholder:     "e.g., Software Subscription",
		KeyCategoryPlaceholderExpense: "e.g., Software",
		KeySaveExpense:                "Save Expense",
		KeyExpenseHistory:             "Expense History",
		KeyExpenseHistoryDesc:         "A log of all your business expenses.",
		KeyItem:                       "Item",
		KeyExpenseAdded:               "Expense added",
		KeyExpenseAddedDesc:           "{amount} for {item} has been added.",
		KeyItemMin2:                   "Item name must be at least 2 characters.",
		KeyNew:                        "New",
		KeyNewAppointment:             "New Appointment",
		KeyNewAppointmentDesc:         "Schedule a new appointment.",
		KeyClient:                     "Client",
		KeyClientPlaceholder:          "e.g., Jane Smith",
		KeyDescription:                "Description",
		KeyDescriptionPlaceholder:     "e.g., Project kickoff meeting",
		KeyTime:                       "Time",
		KeyTimePlaceholder:            "e.g., 02:30 PM",
		KeyScheduleAppointment:        "Schedule Appointment",
		KeySelectDateOnCalendar:       "Select a date on the calendar",
		KeyNoAppointmentsForDate:      "No appointments for this date.",
		KeyClientNameRequired:         "Client name is required.",
		KeyDescriptionMin5:            "Description must be at least 5 characters.",
		KeyInvalidTimeFormat:          "Please enter a valid time (e.g., 02:00 PM).",
		KeyAppointmentScheduled:       "Appointment Scheduled",
		KeyAppointmentScheduledDesc:   "Appointment with {client} on {date} at {time}.",
		KeySelectDate:                 "Select a date",
		KeySalesStatistics:            "Sales Statistics",
		KeyRevenueByCategory:          "Revenue by Category",
		KeyRevenueByCategoryDesc:      "An analysis of revenue from different categories.",
		KeyTopClients:                 "Top Clients",
		KeyTopClientsDesc:             "The highest revenue-generating clients.",
		KeyTransactionHistory:         "Transaction History",
		KeyTransactionHistoryDesc:     "A detailed list of all sales transactions.",
	},
	Vietnamese: {
		KeyDashboard:                  "Bảng điều khiển",
		KeyRevenue:                    "Doanh thu",
		KeyExpenses:                   "Chi phí",
		KeyCalendar:                   "Lịch",
		KeySales:                      "Bán hàng",
		KeyTotalRevenue:               "Tổng doanh thu",
		KeyTotalExpenses:              "Tổng chi phí",
		KeyProfit:                     "Lợi nhuận",
		KeyBasedOnIncome:              "Dựa trên tất cả thu nhập đã ghi",
		KeyBasedOnExpenses:            "Dựa trên tất cả chi phí đã ghi",
		KeyRevenueMinusExpenses:       "Doanh thu trừ chi phí",
		KeyFinancialOverview:          "Tổng quan tài chính",
		KeyMonthlyRevenueVsExpenses:   "Doanh thu hàng tháng so với chi phí.",
		KeyUpcomingAppointments:       "Các cuộc hẹn sắp tới",
		KeyYouHaveXAppointments:       "Bạn có {count} cuộc hẹn sắp tới.",
		KeyNoAppointments:             "Không có cuộc hẹn sắp tới.",
		KeyLanguage:                   "Ngôn ngữ",
		KeyEnglish:                    "Tiếng Anh",
		KeyVietnamese:                 "Tiếng Việt",
		KeyJapanese:                   "Tiếng Nhật",
		KeyAddRevenue:                 "Thêm doanh thu",
		KeyAddRevenueDesc:             "Ghi lại một nguồn thu nhập mới.",
		KeySource:                     "Nguồn",
		KeySourcePlaceholder:          "ví dụ: Khách hàng X",
		KeyCategory:                   "Danh mục",
		KeyCategoryPlaceholderRevenue: "ví dụ: Phát triển web",
		KeyAmount:                     "Số tiền",
		KeyDate:                       "Ngày",
		KeyPickDate:                   "Chọn một ngày",
		KeySaveRevenue:                "Lưu doanh thu",
		KeyRevenueHistory:             "Lịch sử doanh thu",
		KeyRevenueHistoryDesc:         "Nhật ký tất cả các nguồn thu nhập của bạn.",
		KeyActions:                    "Hành động",
		KeyToggleMenu:                 "Chuyển đổi menu",
		KeyEdit:                       "Chỉnh sửa",
		KeyDelete:                     "Xóa",
		KeyRevenueAdded:               "Đã thêm doanh thu",
		KeyRevenueAddedDesc:           "{amount} từ {source} đã được thêm.",
		KeySourceMin2:                 "Nguồn phải có ít nhất 2 ký tự.",
		KeyCategoryMin2:               "Danh mục phải có ít nhất 2 ký tự.",
		KeyAmountPositive:             "Số tiền phải là một số dương.",
		KeyDateRequired:               "Ngày là bắt buộc.",
		KeyInvalidRequestBody:         "Không thể hiểu được yêu cầu.",
		KeyAddExpense:                 "Thêm chi phí",
		KeyAddExpenseDesc:             "Ghi lại một khoản chi phí kinh doanh mới.",
		KeyItemService:                "Mục/Dịch vụ",
		KeyItemServicePlaceholder:     "ví dụ: Đăng ký phần mềm",
		KeyCategoryPlaceholderExpense: "ví dụ: Phần mềm",
		KeySaveExpense:                "Lưu chi phí",
		KeyExpenseHistory:             "Lịch sử chi phí",
		KeyExpenseHistoryDesc:         "Nhật ký tất cả các chi phí kinh doanh của bạn.",
		KeyItem:                       "Mục",
		KeyExpenseAdded:               "Đã thêm chi phí",
		KeyExpenseAddedDesc:           "{amount} cho {item} đã được thêm.",
		KeyItemMin2:                   "Tên mục phải có ít nhất 2 ký tự.",
		KeyNew:                        "Mới",
		KeyNewAppointment:             "Cuộc hẹn mới",
		KeyNewAppointmentDesc:         "Lên lịch một cuộc hẹn mới.",
		KeyClient:                     "Khách hàng",
		KeyClientPlaceholder:          "ví dụ: Jane Smith",
		KeyDescription:                "Mô tả",
		KeyDescriptionPlaceholder:     "ví dụ: Họp khởi động dự án",
		KeyTime:                       "Thời gian",
		KeyTimePlaceholder:            "ví dụ: 02:30 CH",
		KeyScheduleAppointment:        "Lên lịch hẹn",
		KeySelectDateOnCalendar:       "Chọn một ngày trên lịch",
		KeyNoAppointmentsForDate:      "Không có cuộc hẹn nào cho ngày này.",
		KeyClientNameRequired:         "Tên khách hàng là bắt buộc.",
		KeyDescriptionMin5:            "Mô tả phải có ít nhất 5 ký tự.",
		KeyInvalidTimeFormat:          "Vui lòng nhập thời gian hợp lệ (ví dụ: 02:00 PM).",
		KeyAppointmentScheduled:       "Đã lên lịch cuộc hẹn",
		KeyAppointmentScheduledDesc:   "Cuộc hẹn với {client} vào {date} lúc {time}.",
		KeySelectDate:                 "Chọn một ngày",
		KeySalesStatistics:            "Thống kê bán hàng",
		KeyRevenueByCategory:          "Doanh thu theo danh mục",
		KeyRevenueByCategoryDesc:      "Phân tích doanh thu từ các danh mục khác nhau.",
		KeyTopClients:                 "Khách hàng hàng đầu",
		KeyTopClientsDesc:             "Những khách hàng đóng góp doanh thu cao nhất.",
		KeyTransactionHistory:         "Lịch sử giao dịch",
		KeyTransactionHistoryDesc:     "Danh sách chi tiết tất cả các giao dịch bán hàng.",
	},
	Japanese: {
		KeyDashboard:                  "ダッシュボード",
		KeyRevenue:                    "収益",
		KeyExpenses:                   "経費",
		KeyCalendar:                   "カレンダー",
		KeySales:                      "販売",
		KeyTotalRevenue:               "総収益",
		KeyTotalExpenses:              "総経費",
		KeyProfit:                     "利益",
		KeyBasedOnIncome:              "記録されたすべての収入に基づく",
		KeyBasedOnExpenses:            "記録されたすべての経費に基づく",
		KeyRevenueMinusExpenses:       "収益から経費を差し引いたもの",
		KeyFinancialOverview:          "財務概要",
		KeyMonthlyRevenueVsExpenses:   "月次の収益と経費。",
		KeyUpcomingAppointments:       "今後の予定",
		KeyYouHaveXAppointments:       "{count} 件の予定があります。",
		KeyNoAppointments:             "今後の予定はありません。",
		KeyLanguage:                   "言語",
		KeyEnglish:                    "英語",
		KeyVietnamese:                 "ベトナム語",
		KeyJapanese:                   "日本語",
		KeyAddRevenue:                 "収益を追加",
		KeyAddRevenueDesc:             "新しい収入源を記録します。",
		KeySource:                     "ソース",
		KeySourcePlaceholder:          "例：クライアントX",
		KeyCategory:                   "カテゴリ",
		KeyCategoryPlaceholderRevenue: "例：ウェブ開発",
		KeyAmount:                     "金額",
		KeyDate:                       "日付",
		KeyPickDate:                   "日付を選択",
		KeySaveRevenue:                "収益を保存",
		KeyRevenueHistory:             "収益履歴",
		KeyRevenueHistoryDesc:         "すべての収入源のログ。",
		KeyActions:                    "アクション",
		KeyToggleMenu:                 "メニューを切り替え",
		KeyEdit:                       "編集",
		KeyDelete:                     "削除",
		KeyRevenueAdded:               "収益が追加されました",
		KeyRevenueAddedDesc:           "{source} から {amount} が追加されました。",
		KeySourceMin2:                 "ソースは2文字以上である必要があります。",
		KeyCategoryMin2:               "カテゴリは2文字以上である必要があります。",
		KeyAmountPositive:             "金額は正の数である必要があります。",
		KeyDateRequired:               "日付は必須です。",
		KeyInvalidRequestBody:         "リクエストを解釈できませんでした。",
		KeyAddExpense:                 "経費を追加",
		KeyAddExpenseDesc:             "新しい事業経費を記録します。",
		KeyItemService:                "項目/サービス",
		KeyItemServicePlaceholder:     "例：ソフトウェアのサブスクリプション",
		KeyCategoryPlaceholderExpense: "例：ソフトウェア",
		KeySaveExpense:                "経費を保存",
		KeyExpenseHistory:             "経費履歴",
		KeyExpenseHistoryDesc:         "すべての事業経費のログ。",
		KeyItem:                       "項目",
		KeyExpenseAdded:               "経費が追加されました",
		KeyExpenseAddedDesc:           "{item} の {amount} が追加されました。",
		KeyItemMin2:                   "項目名は2文字以上である必要があります。",
		KeyNew:                        "新規",
		KeyNewAppointment:             "新しい予定",
		KeyNewAppointmentDesc:         "新しい予定をスケジュールします。",
		KeyClient:                     "クライアント",
		KeyClientPlaceholder:          "例：山田花子",
		KeyDescription:                "説明",
		KeyDescriptionPlaceholder:     "例：プロジェクトキックオフ会議",
		KeyTime:                       "時間",
		KeyTimePlaceholder:            "例：午後2時30分",
		KeyScheduleAppointment:        "予定をスケジュール",
		KeySelectDateOnCalendar:       "カレンダーで日付を選択",
		KeyNoAppointmentsForDate:      "この日の予定はありません。",
		KeyClientNameRequired:         "クライアント名は必須です。",
		KeyDescriptionMin5:            "説明は5文字以上である必要があります。",
		KeyInvalidTimeFormat:          "有効な時間を入力してください（例：午後2時）。",
		KeyAppointmentScheduled:       "予定がスケジュールされました",
		KeyAppointmentScheduledDesc:   "{client} との予定は {date} の {time} です。",
		KeySelectDate:                 "日付を選択",
		KeySalesStatistics:            "販売統計",
		KeyRevenueByCategory:          "カテゴリ別収益",
		KeyRevenueByCategoryDesc:      "異なるカテゴリからの収益の分析。",
		KeyTopClients:                 "トップクライアント",
		KeyTopClientsDesc:             "最も収益を上げているクライアント。",
		KeyTransactionHistory:         "取引履歴",
		KeyTransactionHistoryDesc:     "すべての販売取引の詳細なリスト。",
	},
}
