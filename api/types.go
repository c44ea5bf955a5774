package api

// Complex statuses as reported by the backend.
const (
	ComplexActive      = "active"
	ComplexClosed      = "closed"
	ComplexMaintenance = "maintenance"
)

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// Payment statuses.
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
	PaymentError  = "error"
)

type Province struct {
	ProvinceID   int    `json:"provinceId"`
	ProvinceName string `json:"provinceName"`
}

type District struct {
	DistrictID   int    `json:"districtId"`
	DistrictName string `json:"districtName"`
}

type Complex struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	DistrictName string  `json:"districtName"`
	ProvinceName string  `json:"provinceName"`
	Phone        string  `json:"phone"`
	Status       string  `json:"status"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	// Distance in km, set only on nearby search results.
	Distance float64 `json:"distance,omitempty"`
}

type Pitch struct {
	ID        int    `json:"id"`
	ComplexID int    `json:"complexId"`
	Name      string `json:"name"`
	Type      string `json:"type"` // FIVE, SEVEN or ELEVEN
	// PricePerHour is the whole-session price despite its name; the
	// backend charges it once per booking, not per hour.
	PricePerHour int    `json:"pricePerHour"`
	Status       string `json:"status"`
}

type PitchGroup struct {
	ID          int    `json:"id"`
	ComplexID   int    `json:"complexId"`
	ComplexName string `json:"complexName"`
	Name        string `json:"name"`
	PitchIDs    []int  `json:"pitchIds"`
	Price       int    `json:"price"`
	Status      string `json:"status"`
}

type TimeSlot struct {
	ID        int    `json:"id"`
	StartTime string `json:"startTime"` // HH:mm:ss
	EndTime   string `json:"endTime"`   // HH:mm:ss
	Price     int    `json:"price"`     // add-on fee on top of the pitch/group price
	Status    string `json:"status"`
}

type Booking struct {
	ID          int    `json:"id"`
	UserID      int    `json:"userId"`
	TargetType  string `json:"targetType"` // "pitch" or "group"
	TargetID    int    `json:"targetId"`
	TimeSlotID  int    `json:"timeSlotId"`
	BookingDate string `json:"bookingDate"` // YYYY-MM-DD
	Status      string `json:"status"`
	ComplexName string `json:"complexName"`
	TargetName  string `json:"targetName"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

type Payment struct {
	ID        int    `json:"id"`
	BookingID int    `json:"bookingId"`
	Amount    int    `json:"amount"`
	Method    string `json:"method"`
	Status    string `json:"status"`
}

type User struct {
	ID       int      `json:"id"`
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Avatar   string   `json:"avatar"`
	Roles    []string `json:"roles"`
}

func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type ComplexImage struct {
	ImageID  int    `json:"imageId"`
	ImageURL string `json:"imageUrl"`
}
