package usecasecontract

// NotificationPolicy decides what a failed notification does to an add.
type NotificationPolicy string

const (
	// NotificationPolicyGating commits the like only after the notification succeeded.
	NotificationPolicyGating NotificationPolicy = "gating"
	// NotificationPolicyBestEffort commits regardless and only logs a failed notification.
	NotificationPolicyBestEffort NotificationPolicy = "best_effort"
)

// IConfigProvider exposes the settings the use cases and handlers depend on.
type IConfigProvider interface {
	GetNotificationPolicy() NotificationPolicy
	GetRateLimitPerSecond() float64
}
