package i18n

// Message keys. The set is closed: every key listed here has an entry in all
// three translation tables.
const (
	KeyDashboard                  Key = "dashboard"
	KeyRevenue                    Key = "revenue"
	KeyExpenses                   Key = "expenses"
	KeyCalendar                   Key = "calendar"
	KeySales                      Key = "sales"
	KeyTotalRevenue               Key = "totalRevenue"
	KeyTotalExpenses              Key = "totalExpenses"
	KeyProfit                     Key = "profit"
	KeyBasedOnIncome              Key = "basedOnIncome"
	KeyBasedOnExpenses            Key = "basedOnExpenses"
	KeyRevenueMinusExpenses       Key = "revenueMinusExpenses"
	KeyFinancialOverview          Key = "financialOverview"
	KeyMonthlyRevenueVsExpenses   Key = "monthlyRevenueVsExpenses"
	KeyUpcomingAppointments       Key = "upcomingAppointments"
	KeyYouHaveXAppointments       Key = "youHaveXAppointments"
	KeyNoAppointments             Key = "noAppointments"
	KeyLanguage                   Key = "language"
	KeyEnglish                    Key = "english"
	KeyVietnamese                 Key = "vietnamese"
	KeyJapanese                   Key = "japanese"
	KeyAddRevenue                 Key = "addRevenue"
	KeyAddRevenueDesc             Key = "addRevenueDesc"
	KeySource                     Key = "source"
	KeySourcePlaceholder          Key = "sourcePlaceholder"
	KeyCategory                   Key = "category"
	KeyCategoryPlaceholderRevenue Key = "categoryPlaceholderRevenue"
	KeyAmount                     Key = "amount"
	KeyDate                       Key = "date"
	KeyPickDate                   Key = "pickDate"
	KeySaveRevenue                Key = "saveRevenue"
	KeyRevenueHistory             Key = "revenueHistory"
	KeyRevenueHistoryDesc         Key = "revenueHistoryDesc"
	KeyActions                    Key = "actions"
	KeyToggleMenu                 Key = "toggleMenu"
	KeyEdit                       Key = "edit"
	KeyDelete                     Key = "delete"
	KeyRevenueAdded               Key = "revenueAdded"
	KeyRevenueAddedDesc           Key = "revenueAddedDesc"
	KeySourceMin2                 Key = "sourceMin2"
	KeyCategoryMin2               Key = "categoryMin2"
	KeyAmountPositive             Key = "amountPositive"
	KeyDateRequired               Key = "dateRequired"
	KeyAddExpense                 Key = "addExpense"
	KeyAddExpenseDesc             Key = "addExpenseDesc"
	KeyItemService                Key = "itemService"
	KeyItemServicePlaceholder     Key = "itemServicePlaceholder"
	KeyCategoryPlaceholderExpense Key = "categoryPlaceholderExpense"
	KeySaveExpense                Key = "saveExpense"
	KeyExpenseHistory             Key = "expenseHistory"
	KeyExpenseHistoryDesc         Key = "expenseHistoryDesc"
	KeyItem                       Key = "item"
	KeyExpenseAdded               Key = "expenseAdded"
	KeyExpenseAddedDesc           Key = "expenseAddedDesc"
	KeyItemMin2                   Key = "itemMin2"
	KeyNew                        Key = "new"
	KeyNewAppointment             Key = "newAppointment"
	KeyNewAppointmentDesc         Key = "newAppointmentDesc"
	KeyClient                     Key = "client"
	KeyClientPlaceholder          Key = "clientPlaceholder"
	KeyDescription                Key = "description"
	KeyDescriptionPlaceholder     Key = "descriptionPlaceholder"
	KeyTime                       Key = "time"
	KeyTimePlaceholder            Key = "timePlaceholder"
	KeyScheduleAppointment        Key = "scheduleAppointment"
	KeySelectDateOnCalendar       Key = "selectDateOnCalendar"
	KeyNoAppointmentsForDate      Key = "noAppointmentsForDate"
	KeyClientNameRequired         Key = "clientNameRequired"
	KeyDescriptionMin5            Key = "descriptionMin5"
	KeyInvalidTimeFormat          Key = "invalidTimeFormat"
	KeyAppointmentScheduled       Key = "appointmentScheduled"
	KeyAppointmentScheduledDesc   Key = "appointmentScheduledDesc"
	KeySelectDate                 Key = "selectDate"
	KeySalesStatistics            Key = "salesStatistics"
	KeyRevenueByCategory          Key = "revenueByCategory"
	KeyRevenueByCategoryDesc      Key = "revenueByCategoryDesc"
	KeyTopClients                 Key = "topClients"
	KeyTopClientsDesc             Key = "topClientsDesc"
	KeyTransactionHistory         Key = "transactionHistory"
	KeyTransactionHistoryDesc     Key = "transactionHistoryDesc"
	KeyInvalidRequestBody         Key = "invalidRequestBody"
)

// AllKeys lists every message key, used to verify table completeness.
var AllKeys = []Key{
	KeyDashboard, KeyRevenue, KeyExpenses, KeyCalendar, KeySales,
	KeyTotalRevenue, KeyTotalExpenses, KeyProfit, KeyBasedOnIncome,
	KeyBasedOnExpenses, KeyRevenueMinusExpenses, KeyFinancialOverview,
	KeyMonthlyRevenueVsExpenses, KeyUpcomingAppointments,
	KeyYouHaveXAppointments, KeyNoAppointments, KeyLanguage, KeyEnglish,
	KeyVietnamese, KeyJapanese, KeyAddRevenue, KeyAddRevenueDesc, KeySource,
	KeySourcePlaceholder, KeyCategory, KeyCategoryPlaceholderRevenue,
	KeyAmount, KeyDate, KeyPickDate, KeySaveRevenue, KeyRevenueHistory,
	KeyRevenueHistoryDesc, KeyActions, KeyToggleMenu, KeyEdit, KeyDelete,
	KeyRevenueAdded, KeyRevenueAddedDesc, KeySourceMin2, KeyCategoryMin2,
	KeyAmountPositive, KeyDateRequired, KeyAddExpense, KeyAddExpenseDesc,
	KeyItemService, KeyItemServicePlaceholder, KeyCategoryPlaceholderExpense,
	KeySaveExpense, KeyExpenseHistory, KeyExpenseHistoryDesc, KeyItem,
	KeyExpenseAdded, KeyExpenseAddedDesc, KeyItemMin2, KeyNew,
	KeyNewAppointment, KeyNewAppointmentDesc, KeyClient, KeyClientPlaceholder,
	KeyDescription, KeyDescriptionPlaceholder, KeyTime, KeyTimePlaceholder,
	KeyScheduleAppointment, KeySelectDateOnCalendar, KeyNoAppointmentsForDate,
	KeyClientNameRequired, KeyDescriptionMin5, KeyInvalidTimeFormat,
	KeyAppointmentScheduled, KeyAppointmentScheduledDesc, KeySelectDate,
	KeySalesStatistics, KeyRevenueByCategory, KeyRevenueByCategoryDesc,
	KeyTopClients, KeyTopClientsDesc, KeyTransactionHistory,
	KeyTransactionHistoryDesc, KeyInvalidRequestBody,
}
