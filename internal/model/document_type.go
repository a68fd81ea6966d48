package model

// DocumentType is a named classification a document may belong to,
// e.g. "Credit Agreement". DataElements is populated by the grouped
// listing; it is nil elsewhere.
type DocumentType struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Description  *string       `json:"description,omitempty"`
	DataElements []DataElement `json:"data_elements,omitempty"`
}

// DataElement is a named field concept a document type expects to
// contain, e.g. "Loan Amount". Names are not unique across the set.
type DataElement struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// DocumentTypeDataElement is one row of the many-to-many association
// between document types and data elements. The pair of identities is
// the key; a pair appears at most once.
type DocumentTypeDataElement struct {
	DocumentTypeID int64 `json:"document_type_id"`
	DataElementID  int64 `json:"data_element_id"`
	IsRequired     bool  `json:"is_required"`
	AllowMultiple  bool  `json:"allow_multiple"`
}
