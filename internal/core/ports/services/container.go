package services

// ServiceContainer bundles every service port for injection into the
// HTTP layer.
type ServiceContainer struct {
	Auth        AuthService
	Import      ImportService
	Transaction TransactionService
	Rule        RuleService
	Account     AccountService
	Ledger      LedgerService
	Reporting   ReportingService
	System      SystemService
}
