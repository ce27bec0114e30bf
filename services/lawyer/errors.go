package lawyer

import "lexhub/utils"

// Aliases for the shared typed service errors.
type (
	NotFoundError   = utils.NotFoundError
	ForbiddenError  = utils.ForbiddenError
	ConflictError   = utils.ConflictError
	BadRequestError = utils.BadRequestError
)
