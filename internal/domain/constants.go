package domain

// Ключи бизнес-конфигурации в system_config
const (
	ConfigKeyOpenHour                = "OPEN_HOUR"
	ConfigKeyCloseHour               = "CLOSE_HOUR"
	ConfigKeySlotStepMinutes         = "SLOT_STEP_MINUTES"
	ConfigKeyMinBookingMinutes       = "MIN_BOOKING_MINUTES"
	ConfigKeyMaxActiveBookings       = "MAX_ACTIVE_BOOKINGS_PER_CLIENT"
	ConfigKeySessionTimeoutMinutes   = "BOOKING_SESSION_TIMEOUT_MINUTES"
	ConfigKeyPaymentInstruction      = "PAYMENT_INSTRUCTION"
	ConfigKeyTelegramAdminID         = "TELEGRAM_ADMIN_ID"
	ConfigKeyNotificationsEnabled    = "TELEGRAM_NOTIFICATIONS_ENABLED"
)

// Дефолтные значения бизнес-конфигурации.
// Используются, когда ключ отсутствует в system_config.
const (
	DefaultOpenHour              = 9
	DefaultCloseHour             = 22
	DefaultSlotStepMinutes       = 30
	DefaultMinBookingMinutes     = 120
	DefaultMaxActiveBookings     = 3
	DefaultSessionTimeoutMinutes = 30
	DefaultNotificationsEnabled  = true

	DefaultPaymentInstruction = `Пожалуйста, переведите оплату на карту •1234 5678 9012 3456• и нажмите "Я оплатил"`
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "02.01.2006 15:04" // для текстов уведомлений
)

// maxFormattedIntervals сколько интервалов показывается целиком
// в сводке свободного времени
const maxFormattedIntervals = 3

// ActiveStatuses статусы, учитываемые в лимите активных бронирований клиента.
// rejected и cancelled в лимит не входят.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusPaymentReported,
	StatusApproved,
}
