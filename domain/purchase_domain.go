package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessCreatePurchase   = "purchase request submitted, pending admin approval"
	MessageSuccessGetUserPurchases = "purchases retrieved successfully"
	MessageSuccessApprovePurchase  = "purchase approved and coins distributed"
	MessageSuccessRejectPurchase   = "purchase rejected successfully"

	MessageFailedCreatePurchase   = "failed to create purchase"
	MessageFailedGetUserPurchases = "failed to retrieve purchases"
	MessageFailedApprovePurchase  = "failed to approve purchase"
	MessageFailedRejectPurchase   = "failed to reject purchase"

	ErrPurchaseNotFound   = errors.New("purchase not found")
	ErrDuplicatePurchase  = errors.New("already purchased or pending approval")
	ErrPurchaseNotPending = errors.New("purchase already processed")
)

const (
	PurchaseStatusPending  = "pending"
	PurchaseStatusPaid     = "paid"
	PurchaseStatusRejected = "rejected"
)

type (
	CreatePurchaseRequest struct {
		PackageID  string                `json:"package_id" form:"package_id" validate:"required"`
		Screenshot *multipart.FileHeader `json:"screenshot" form:"screenshot"`
	}

	PurchaseResponse struct {
		PackageID  string `json:"package_id"`
		Status     string `json:"status"`
		Screenshot string `json:"screenshot,omitempty"`
	}

	ApprovePurchaseResponse struct {
		Status      string         `json:"status"`
		Distributed []PayoutCredit `json:"distributed"`
	}

	RejectPurchaseResponse struct {
		Status string `json:"status"`
	}
)
