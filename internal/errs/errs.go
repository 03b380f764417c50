// Gói errs định nghĩa các loại lỗi mà collector có thể gặp phải.
// Mỗi loại lỗi tương ứng với một nguồn thất bại khác nhau trong pipeline.

package errs

import "fmt"

// TransportError là lỗi mạng hoặc phản hồi không thể giải mã từ một endpoint có cấu trúc
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError là lỗi khi markup HTML không khớp với mẫu trích xuất
type ParseError struct {
	FullName string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse page of %s: %s", e.FullName, e.Reason)
}

// AuthError là lỗi khi credential bị service từ chối
type AuthError struct {
	URL    string
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("credential rejected by %s: status %d", e.URL, e.Status)
}
