package annotation

// Well-known annotation keys for the HTTP capture surface. The key
// space is shared with the collector; appends do not validate key
// ranges.
const (
	KeyHTTPURL            int32 = 40
	KeyHTTPParam          int32 = 41
	KeyHTTPCookie         int32 = 45
	KeyHTTPStatusCode     int32 = 46
	KeyHTTPRequestHeader  int32 = 47
	KeyHTTPResponseHeader int32 = 55
)
