package interfaces

import (
	"context"

	"titansync/internal/domain/entities"
)

// IEstimateSource abstracts the ServiceTitan sales API behind one lazy,
// finite, restartable sequence contract. The two methods cover the two
// upstream pagination protocols:
//
//   - StreamSold: page-number paging over the live estimates endpoint
//     (soldAfter); terminates when a page comes back shorter than the
//     requested page size.
//   - ExportSold: continuation-token paging over the export endpoint
//     (soldOnOrAfter/soldOnOrBefore); terminates when no token is returned
//     or a page is empty.
//
// Both surface mid-pagination failures immediately; yield returning an
// error stops the sequence and propagates the error.
type IEstimateSource interface {
	StreamSold(ctx context.Context, window entities.SoldWindow, yield func(entities.Estimate) error) error
	ExportSold(ctx context.Context, window entities.SoldWindow, yield func(entities.Estimate) error) error
}

// IDirectory resolves technician and customer display names. A missing
// record is not an error: implementations return the synthesized
// "Technician #<id>" / "Customer #<id>" placeholder. Errors are reserved
// for transport failures.
type IDirectory interface {
	TechnicianName(ctx context.Context, id int64) (string, error)
	CustomerName(ctx context.Context, id int64) (string, error)
}

// IPricebookSource lists pricebook SKUs from the upstream API, one item
// type at a time, page-number paginated.
type IPricebookSource interface {
	ListPricebook(ctx context.Context, itemType entities.PricebookItemType, yield func(entities.PricebookItem) error) error
}

// IChatNotifier delivers a chat message to a webhook URL. A non-2xx
// response is a delivery failure returned as an error together with the
// status code; deliveries are never retried automatically.
type IChatNotifier interface {
	Send(ctx context.Context, webhookURL string, msg entities.ChatMessage) (statusCode int, err error)
}
