package apierr

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Hata türleri. Her tür, yanıt gövdesindeki "error" alanında aynen görünür.
const (
	KindInvalidFileType    = "Invalid File Type"
	KindMissingColumns     = "Missing Columns"
	KindInvalidData        = "Invalid Data"
	KindNoRecordsInserted  = "No Records Inserted"
	KindProcessing         = "File Processing Error"
	KindInvalidRequest     = "Invalid Request"
	KindServiceUnavailable = "Service Unavailable"
)

// Error: İşleme hattından transport katmanına taşınan yapılandırılmış hata.
// ErrorHandler bunu {error, detail, timestamp} gövdesine çevirir.
type Error struct {
	Kind   string
	Status int
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func InvalidFileType(detail string) *Error {
	return &Error{Kind: KindInvalidFileType, Status: fiber.StatusBadRequest, Detail: detail}
}

func MissingColumns(detail string) *Error {
	return &Error{Kind: KindMissingColumns, Status: fiber.StatusBadRequest, Detail: detail}
}

func InvalidData(detail string) *Error {
	return &Error{Kind: KindInvalidData, Status: fiber.StatusBadRequest, Detail: detail}
}

func NoRecordsInserted(detail string) *Error {
	return &Error{Kind: KindNoRecordsInserted, Status: fiber.StatusBadRequest, Detail: detail}
}

func Processing(err error) *Error {
	return &Error{Kind: KindProcessing, Status: fiber.StatusInternalServerError, Detail: fmt.Sprintf("Error processing file: %v", err)}
}

func InvalidRequest(detail string) *Error {
	return &Error{Kind: KindInvalidRequest, Status: fiber.StatusBadRequest, Detail: detail}
}

func ServiceUnavailable(err error) *Error {
	return &Error{Kind: KindServiceUnavailable, Status: fiber.StatusServiceUnavailable, Detail: fmt.Sprintf("Service unhealthy: %v", err)}
}

// ErrorResponse: Her başarısız istek için dönen gövde. Stack trace asla sızdırılmaz.
type ErrorResponse struct {
	Err       string `json:"error"`
	Detail    string `json:"detail"`
	Timestamp string `json:"timestamp"`
}

// ErrorHandler: Fiber'ın merkezi hata çevirici fonksiyonu.
// Pipeline'dan gelen *apierr.Error'lar türüyle, fiber.NewError'lar statüsüyle,
// geri kalan her şey beklenmeyen sunucu hatası olarak gövdeye yazılır.
func ErrorHandler(c *fiber.Ctx, err error) error {
	now := time.Now().Format(time.RFC3339)

	if e, ok := err.(*Error); ok {
		return c.Status(e.Status).JSON(ErrorResponse{
			Err:       e.Kind,
			Detail:    e.Detail,
			Timestamp: now,
		})
	}

	if e, ok := err.(*fiber.Error); ok {
		kind := "Bad Request"
		if e.Code >= fiber.StatusInternalServerError {
			kind = "Server Error"
		} else if e.Code == fiber.StatusUnauthorized || e.Code == fiber.StatusForbidden {
			kind = "Unauthorized"
		}
		return c.Status(e.Code).JSON(ErrorResponse{
			Err:       kind,
			Detail:    e.Message,
			Timestamp: now,
		})
	}

	log.Println("Beklenmeyen hata:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Err:       KindProcessing,
		Detail:    "Beklenmeyen sunucu hatası",
		Timestamp: now,
	})
}
