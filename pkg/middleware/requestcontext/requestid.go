package requestcontext

import (
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberutils "github.com/gofiber/fiber/v2/utils"
)

var requestIdLocalsKey = requestid.ConfigDefault.ContextKey

func newRequestId() string {
	return fiberutils.UUIDv4()
}
