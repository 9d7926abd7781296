package constants

const DefaultSqliteDbFileName = "projects.db"
const ConfigFileName = "config.yml"
const EnvPrefix = "PORTFOLIO"

// PlaceholderImage is shown wherever a project has no image stored.
const PlaceholderImage = "placeholder.png"

const (
	ProjectsTableName           = "projects"
	ProjectsIdColumn            = "id"
	ProjectsTitleColumn         = "Title"
	ProjectsDescriptionColumn   = "Description"
	ProjectsImageFileNameColumn = "ImageFileName"
	ProjectsCreatedDateColumn   = "CreatedDate"
)

const (
	IndexPage    = "index.html"
	AboutPage    = "about.html"
	ResumePage   = "resume.html"
	ContactPage  = "contact.html"
	ThankYouPage = "thankyou.html"
)

const FlashSessionName = "portfolio-flash"

const RequestIDHeader = "X-Request-Id"

// SecretsFileName holds generated secrets next to the database file.
const SecretsFileName = ".portfolio-secrets"
