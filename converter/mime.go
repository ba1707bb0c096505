package converter

// Media types the service speaks. Record links advertise the legacy uub
// record type; generated action links use the cora family.
const (
	mimeUUBRecord      = "application/vnd.uub.record+json"
	mimeCoraRecord     = "application/vnd.cora.record+json"
	mimeCoraRecordList = "application/vnd.cora.recordList+json"
	mimeCoraWorkOrder  = "application/vnd.cora.workorder+json"
	mimeMultipartForm  = "multipart/form-data"
)
