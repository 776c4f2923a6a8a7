package handler

// --- Requests ---

type clientRequest struct {
	Name      string `json:"name"      form:"name"      validate:"notblank"`
	Email     string `json:"email"     form:"email"     validate:"notblank"`
	Phone     string `json:"phone"     form:"phone"     validate:"notblank"`
	DateAdded string `json:"dateAdded" form:"dateAdded"`
	Method    string `json:"_method"   form:"_method"`
}

type caseFileRequest struct {
	ClientID    string `json:"clientId"    form:"clientId"    validate:"notblank"`
	Title       string `json:"title"       form:"title"       validate:"notblank"`
	Subject     string `json:"subject"     form:"subject"     validate:"notblank"`
	Date        string `json:"date"        form:"date"        validate:"notblank"`
	Place       string `json:"place"       form:"place"       validate:"notblank"`
	Court       string `json:"court"       form:"court"       validate:"notblank"`
	Description string `json:"description" form:"description"`
	Method      string `json:"_method"     form:"_method"`
}

// otherDocumentRequest uses pointers for optional fields so that an update
// can tell "not sent" from "sent empty".
type otherDocumentRequest struct {
	Title        string   `json:"title"        form:"title"        validate:"notblank"`
	Type         string   `json:"type"         form:"type"         validate:"notblank"`
	Description  string   `json:"description"  form:"description"  validate:"notblank"`
	Author       *string  `json:"author"       form:"author"`
	Tags         *TagList `json:"tags"         form:"tags"         swaggertype:"array,string"`
	Source       *string  `json:"source"       form:"source"`
	Jurisdiction *string  `json:"jurisdiction" form:"jurisdiction"`
	Court        *string  `json:"court"        form:"court"`
	CaseNumber   *string  `json:"caseNumber"   form:"caseNumber"`
	Year         *string  `json:"year"         form:"year"`
	Notes        *string  `json:"notes"        form:"notes"`
	Date         *string  `json:"date"         form:"date"`
	Method       string   `json:"_method"      form:"_method"`
}

type createUserRequest struct {
	Name     string `json:"name"     form:"name"`
	Role     string `json:"role"     form:"role"`
	Avatar   string `json:"avatar"   form:"avatar"`
	Phone    string `json:"phone"    form:"phone"`
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

type updateUserRequest struct {
	Name     *string `json:"name"     form:"name"`
	Role     *string `json:"role"     form:"role"`
	Avatar   *string `json:"avatar"   form:"avatar"`
	Phone    *string `json:"phone"    form:"phone"`
	Email    *string `json:"email"    form:"email"`
	Password *string `json:"password" form:"password"`
}

type loginRequest struct {
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

// --- Views ---

type clientView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	DateAdded string `json:"dateAdded"`
	Active    bool   `json:"active"`
}

type caseFileView struct {
	ID                  string   `json:"id"`
	ClientID            string   `json:"clientId"`
	Title               string   `json:"title"`
	Subject             string   `json:"subject"`
	Date                string   `json:"date"`
	Place               string   `json:"place"`
	Court               string   `json:"court"`
	Description         string   `json:"description"`
	Documents           []string `json:"documents"`
	GoogleDriveFolderID string   `json:"googleDriveFolderId,omitempty"`
	CreatedAt           string   `json:"createdAt,omitempty"`
	UpdatedAt           string   `json:"updatedAt,omitempty"`
}

type caseFileSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type otherDocumentView struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Type                string   `json:"type"`
	Description         string   `json:"description"`
	Author              string   `json:"author"`
	Tags                []string `json:"tags"`
	Source              string   `json:"source"`
	Jurisdiction        string   `json:"jurisdiction"`
	Court               string   `json:"court"`
	CaseNumber          string   `json:"caseNumber"`
	Year                string   `json:"year"`
	Notes               string   `json:"notes"`
	DateAdded           string   `json:"dateAdded"`
	Documents           []string `json:"documents"`
	GoogleDriveFolderID string   `json:"googleDriveFolderId,omitempty"`
	CreatedAt           string   `json:"createdAt,omitempty"`
	UpdatedAt           string   `json:"updatedAt,omitempty"`
}

type storedFileView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// userView never carries the password hash.
type userView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Avatar  string `json:"avatar"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Deleted bool   `json:"deleted"`
}

// --- Envelopes ---

type messageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

type clientMutationResponse struct {
	Message string     `json:"message"`
	ID      string     `json:"id"`
	Data    clientView `json:"data"`
}

type caseFileCreatedResponse struct {
	Message  string `json:"message"`
	ID       string `json:"id"`
	DriveIDs string `json:"driveIds"`
}

type otherDocumentCreatedResponse struct {
	Message             string            `json:"message"`
	ID                  string            `json:"id"`
	OtherFile           otherDocumentView `json:"otherFile"`
	GoogleDriveFolderID string            `json:"googleDriveFolderId"`
}

type userCreatedResponse struct {
	Message   string   `json:"message"`
	IDUsuario string   `json:"idUsuario"`
	Usuario   userView `json:"usuario"`
}

type userUpdatedResponse struct {
	Message string   `json:"message"`
	Usuario userView `json:"usuario"`
}

type loginResponse struct {
	Message string   `json:"message"`
	User    userView `json:"user"`
	Token   string   `json:"token,omitempty"`
}
