package notify

import (
	"fmt"
	"strings"

	"github.com/vkclicks/vkclicks-api/internal/models"
)

// ComposeBookingNotification builds the mail sent to a photographer
// when a client submits a booking. pkg is nil for custom bookings.
func ComposeBookingNotification(
	siteName string,
	photographer *models.Photographer,
	booking *models.Booking,
	pkg *models.PhotographyPackage,
) Message {

	packageName := "Custom"
	packagePrice := "To be discussed"
	if pkg != nil {
		packageName = pkg.Name
		packagePrice = pkg.Price.StringFixed(2)
	}

	specialRequests := booking.SpecialRequests
	if specialRequests == "" {
		specialRequests = "None"
	}

	body := fmt.Sprintf(`Hi %s,

You have a new booking on %s!

CLIENT DETAILS:
- Name: %s
- Phone: %s
- Email: %s

EVENT:
- Date: %s
- Time: %s
- Location: %s
- Event Type: %s

PACKAGE:
- %s
- Price: ₹%s

Special Requests: %s

Please log in to %s for more details or to confirm the booking.

Best,
%s Team`,
		photographer.User.Username,
		siteName,
		booking.ClientName,
		booking.ClientPhone,
		booking.ClientEmail,
		booking.EventDate,
		booking.EventTime,
		booking.EventLocation,
		booking.EventType,
		packageName,
		packagePrice,
		specialRequests,
		siteName,
		siteName,
	)

	return Message{
		To:      []string{photographer.User.Email},
		Subject: fmt.Sprintf("New Booking via %s - %s", siteName, booking.ClientName),
		Body:    strings.TrimSpace(body),
	}
}

// ComposePasswordReset builds the reset-link mail.
func ComposePasswordReset(siteName, email, resetURL string) Message {
	body := fmt.Sprintf(`Hi,

A password reset was requested for your %s account.

Open the link below to choose a new password. The link expires after a
short while and stops working once your password changes.

%s

If you did not request this, you can ignore this mail.

Best,
%s Team`, siteName, resetURL, siteName)

	return Message{
		To:      []string{email},
		Subject: fmt.Sprintf("%s password reset", siteName),
		Body:    body,
	}
}
