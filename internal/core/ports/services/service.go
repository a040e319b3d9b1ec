package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth        AuthSvc
	User        UserSvc
	Account     AccountSvc
	Category    CategorySvc
	Transaction TransactionSvc
	Budget      BudgetSvc
	Debt        DebtSvc
	Goal        GoalSvc
	Reporting   ReportingSvc
	Settings    SettingsSvc
}
