package services

import (
	"context"
	"fmt"

	"github.com/connexcu/voice-backend/internal/dto"
	"github.com/connexcu/voice-backend/internal/models"
	"github.com/connexcu/voice-backend/internal/speech"
	"github.com/connexcu/voice-backend/pkg/logger"
)

// Handlers in this file never open a core-banking session. They capture the
// request durably (or answer from tenant/static data) and confirm immediately;
// back-office processes fulfill them asynchronously.

func (s *toolService) reportLostCard(ctx context.Context, args dto.ReportLostCardArgs, tc *callContext) dto.ReportLostCardResult {
	log := logger.FromContext(ctx)

	member := memberID(args.MemberID, tc)
	if member == "" {
		return dto.ReportLostCardResult{
			Message: "I need to verify your identity before I can report a card lost.",
		}
	}

	err := s.audit.Record(ctx, models.AuditEvent{
		Event:    "lost_card_report",
		TenantID: tc.TenantID,
		MemberID: member,
		CallSID:  tc.CallSID,
		Detail: map[string]any{
			"cardType": args.CardType,
			"lastFour": args.LastFour,
			"reason":   args.Reason,
		},
	})
	if err != nil {
		log.Error("failed to record lost card report", "member_id", member, "error", err)
		return dto.ReportLostCardResult{
			Message: "I'm sorry, I couldn't file that card report right now. Please call member services so we can block the card immediately.",
		}
	}

	confirmation := s.confirmationNumber("CARD")
	cardType := args.CardType
	if cardType == "" {
		cardType = "card"
	}

	return dto.ReportLostCardResult{
		ConfirmationNumber: confirmation,
		Message: fmt.Sprintf("I've reported your %s ending in %s and it has been blocked. Your confirmation number is %s. A replacement card will be mailed to your address on file.",
			cardType, args.LastFour, confirmation),
	}
}

func (s *toolService) getRoutingInfo(args dto.RoutingInfoArgs, tc *callContext) dto.RoutingInfoResult {
	routing := tc.Tenant.RoutingNumber
	if routing == "" {
		return dto.RoutingInfoResult{
			Message: "I'm sorry, I don't have routing information available right now. Please contact member services for help.",
		}
	}

	name := tc.Tenant.Name
	if name == "" {
		name = "your credit union"
	}

	// Digits are spaced out so the synthesizer reads them one at a time.
	routingPhrase := fmt.Sprintf("The routing number for %s is %s.", name, speech.SpellDigits(routing))

	account := memberID(args.MemberID, tc) + args.AccountSuffix
	if account == "" {
		return dto.RoutingInfoResult{
			RoutingNumber: routing,
			Message: speech.JoinSentences(routingPhrase,
				"For your full account number, please check your statement or the mobile app."),
		}
	}

	accountType := args.AccountType
	if accountType == "" {
		accountType = "account"
	}
	masked := speech.MaskAccount(account)

	return dto.RoutingInfoResult{
		RoutingNumber: routing,
		AccountNumber: masked,
		Message: speech.JoinSentences(routingPhrase,
			fmt.Sprintf("Your %s number is the one %s.", accountType, masked)),
	}
}

func (s *toolService) setTravelNotification(ctx context.Context, args dto.TravelNotificationArgs, tc *callContext) dto.TravelNotificationResult {
	log := logger.FromContext(ctx)

	member := memberID(args.MemberID, tc)
	if member == "" || args.Destination == "" {
		return dto.TravelNotificationResult{
			Success: false,
			Message: "I need to know where you're traveling before I can set a travel notification.",
		}
	}

	err := s.requests.CreateTravelNotice(ctx, &models.TravelNotice{
		TenantID:    tc.TenantID,
		MemberID:    member,
		Destination: args.Destination,
		StartDate:   args.StartDate,
		EndDate:     args.EndDate,
	})
	if err != nil {
		log.Error("failed to save travel notice", "member_id", member, "error", err)
		return dto.TravelNotificationResult{
			Success: false,
			Message: "I'm sorry, I couldn't set that travel notification right now. Please try again in a moment.",
		}
	}

	message := fmt.Sprintf("I've set a travel notification for %s", args.Destination)
	if args.StartDate != "" && args.EndDate != "" {
		message += fmt.Sprintf(" from %s to %s", args.StartDate, args.EndDate)
	}
	message += ". Your cards will work normally while you travel."

	return dto.TravelNotificationResult{
		Success: true,
		Message: message,
	}
}

func (s *toolService) findATMBranch(args dto.FindATMBranchArgs, tc *callContext) dto.FindATMBranchResult {
	if args.ZipCode == "" {
		return dto.FindATMBranchResult{
			Locations: []dto.Location{},
			Message:   "What zip code would you like me to search near?",
		}
	}

	locationType := args.LocationType
	if locationType == "" {
		locationType = "both"
	}

	matches := s.locations.find(args.ZipCode, locationType)
	if len(matches) == 0 {
		return dto.FindATMBranchResult{
			Locations: []dto.Location{},
			Message:   fmt.Sprintf("I couldn't find any locations near %s. Please try another zip code.", args.ZipCode),
		}
	}

	// Speak at most three; the structured list carries everything found.
	spoken := matches
	if len(spoken) > 3 {
		spoken = spoken[:3]
	}
	phrases := make([]string, 0, len(spoken))
	for _, loc := range spoken {
		phrases = append(phrases, fmt.Sprintf("%s at %s.", loc.Name, loc.Address))
	}

	return dto.FindATMBranchResult{
		Locations: matches,
		Count:     len(matches),
		Message: speech.JoinSentences(
			fmt.Sprintf("I found %d locations near %s. The closest are:", len(matches), args.ZipCode),
			speech.JoinSentences(phrases...),
		),
	}
}

func (s *toolService) requestStatement(ctx context.Context, args dto.RequestStatementArgs, tc *callContext) dto.RequestStatementResult {
	log := logger.FromContext(ctx)

	member := memberID(args.MemberID, tc)
	if member == "" {
		return dto.RequestStatementResult{
			Message: "I need to verify your identity before I can request a statement.",
		}
	}

	err := s.requests.CreateStatementRequest(ctx, &models.StatementRequest{
		TenantID:        tc.TenantID,
		MemberID:        member,
		AccountType:     args.AccountType,
		AccountSuffix:   args.AccountSuffix,
		DeliveryMethod:  args.DeliveryMethod,
		StatementPeriod: args.StatementPeriod,
	})
	if err != nil {
		log.Error("failed to save statement request", "member_id", member, "error", err)
		return dto.RequestStatementResult{
			Message: "I'm sorry, I couldn't request that statement right now. Please try again in a moment.",
		}
	}

	period := args.StatementPeriod
	if period == "" {
		period = "most recent"
	}

	if args.DeliveryMethod == "email" {
		return dto.RequestStatementResult{
			Message: fmt.Sprintf("I've requested your %s statement. It will be emailed to the address we have on file within one business day.", period),
		}
	}
	return dto.RequestStatementResult{
		Message: fmt.Sprintf("I've requested your %s statement. It will be mailed to your address on file within five to seven business days.", period),
	}
}

func (s *toolService) updateCreditLimit(ctx context.Context, args dto.UpdateCreditLimitArgs, tc *callContext) dto.UpdateCreditLimitResult {
	log := logger.FromContext(ctx)

	member := memberID(args.MemberID, tc)
	if member == "" || args.CardLastFour == "" || args.RequestedLimit <= 0 {
		return dto.UpdateCreditLimitResult{
			Message: "I need your card's last four digits and the limit you'd like before I can submit that request.",
		}
	}

	requestID := s.confirmationNumber("CLR")
	err := s.requests.CreateCreditLimitRequest(ctx, &models.CreditLimitRequest{
		ID:             requestID,
		TenantID:       tc.TenantID,
		MemberID:       member,
		CardLastFour:   args.CardLastFour,
		RequestedLimit: args.RequestedLimit,
	})
	if err != nil {
		log.Error("failed to save credit limit request", "member_id", member, "error", err)
		return dto.UpdateCreditLimitResult{
			Message: "I'm sorry, I couldn't submit that request right now. Please try again in a moment.",
		}
	}

	return dto.UpdateCreditLimitResult{
		RequestID: requestID,
		Message: fmt.Sprintf("I've submitted your request to change the limit on your card ending in %s to %s. You'll hear back within two business days. Your reference number is %s.",
			args.CardLastFour, speech.Dollars(args.RequestedLimit), requestID),
	}
}

func (s *toolService) voiceBiometricEnrollment(ctx context.Context, args dto.BiometricEnrollmentArgs, tc *callContext) dto.BiometricEnrollmentResult {
	log := logger.FromContext(ctx)

	member := memberID(args.MemberID, tc)
	if member == "" {
		return dto.BiometricEnrollmentResult{
			Message: "I need to verify your identity before I can change your voice authentication settings.",
		}
	}

	err := s.requests.UpsertBiometricSetting(ctx, &models.BiometricSetting{
		MemberID: member,
		TenantID: tc.TenantID,
		OptIn:    args.OptIn,
	})
	if err != nil {
		log.Error("failed to save biometric setting", "member_id", member, "error", err)
		return dto.BiometricEnrollmentResult{
			Enrolled: false,
			Message:  "I'm sorry, I couldn't update your voice authentication settings right now. Please try again in a moment.",
		}
	}

	if args.OptIn {
		return dto.BiometricEnrollmentResult{
			Enrolled: true,
			Message:  "You're now enrolled in voice authentication. Next time you call, I can verify you by your voice.",
		}
	}
	return dto.BiometricEnrollmentResult{
		Enrolled: false,
		Message:  "You've been unenrolled from voice authentication. You'll verify with your PIN on future calls.",
	}
}
