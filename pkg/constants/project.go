package constants

// ProjectPriority classifies a project by how directly it earns money.
type ProjectPriority string

const (
	ProjectPrimaryIncome     ProjectPriority = "primary_income"
	ProjectSecondaryIncome   ProjectPriority = "secondary_income"
	ProjectLongTermInvesting ProjectPriority = "long_term_investment"
	ProjectMaintenance       ProjectPriority = "maintenance"
	ProjectPersonal          ProjectPriority = "personal"
)
