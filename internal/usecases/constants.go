package usecases

import "time"

// Caller-facing messages. Business-rule messages are returned verbatim.
const (
	MsgProductNotFound        = "Product not found"
	MsgUserNotFound           = "User not found"
	MsgConversationNotFound   = "Conversation not found"
	MsgPaymentMethodNotFound  = "Payment method not found"
	MsgReportNotFound         = "Report not found"
	MsgNotAuthorized          = "Not authorized"
	MsgProductUnavailable     = "This product is no longer available"
	MsgSelfPurchase           = "You cannot purchase your own product"
	MsgInvalidPaymentMethod   = "Invalid payment method"
	MsgPurchaseFieldsRequired = "Product ID and payment method are required"
	MsgEmailRegistered        = "Email already registered"
	MsgCredentialsRequired    = "Email and password required"
	MsgInvalidCredentials     = "Invalid credentials"
	MsgNotAuthenticated       = "Not authenticated"
	MsgSoldListingImmutable   = "Sold listings cannot be modified"
	MsgSelfConversation       = "You cannot start a conversation about your own listing"
	MsgSellerMismatch         = "Seller does not own this product"
	MsgEmptyMessage           = "Message content is required"
	MsgCannotDeleteSelf       = "You cannot delete your own account"
	MsgNoImage                = "No image file provided"
	MsgInvalidImageType       = "Invalid file type. Only JPEG, PNG, GIF, and WebP are allowed."
	MsgImageTooLarge          = "Image must be 5MB or smaller"
)

// DefaultMaxImageBytes caps uploaded images when no limit is configured.
const DefaultMaxImageBytes int64 = 5 * 1024 * 1024

// DefaultSessionTTL is used when the configured TTL is not positive.
const DefaultSessionTTL = 7 * 24 * time.Hour

// allowedImageTypes maps accepted content types to stored file extensions.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}
