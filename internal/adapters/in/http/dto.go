package http

import "time"

// Wire types for the REST API. Field names keep the legacy French JSON
// contract the front end depends on.

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderLineRequest is one requested order line. PrixUnitaire may be
// omitted or zero to take the catalog price.
type NewOrderLineRequest struct {
	ProduitID    int64   `json:"produitId"`
	Qte          int     `json:"qte"`
	PrixUnitaire float64 `json:"prixUnitaire,omitempty"`
}

// NewOrderRequest is the order creation payload.
type NewOrderRequest struct {
	ClientNom    string                `json:"clientNom"`
	Adresse      string                `json:"adresse"`
	Telephone    string                `json:"telephone"`
	Gouvernement string                `json:"gouvernement"`
	UserID       int64                 `json:"userId"`
	Statut       string                `json:"statut,omitempty"`
	Lignes       []NewOrderLineRequest `json:"lignes"`
}

// UpdateOrderRequest is the partial-update payload; absent fields are left
// untouched.
type UpdateOrderRequest struct {
	ClientNom    *string `json:"clientNom,omitempty"`
	Adresse      *string `json:"adresse,omitempty"`
	Telephone    *string `json:"telephone,omitempty"`
	Gouvernement *string `json:"gouvernement,omitempty"`
	Statut       *string `json:"statut,omitempty"`
}

// AssignCourierRequest names the courier to wire to an order.
type AssignCourierRequest struct {
	LivreurID int64 `json:"livreurId"`
}

// NewCourierRequest is the courier registration payload.
type NewCourierRequest struct {
	Nom       string `json:"nom"`
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	UserID    *int64 `json:"userId,omitempty"`
}

// NewUserRequest is the user registration payload.
type NewUserRequest struct {
	Nom      string `json:"nom,omitempty"`
	Prenom   string `json:"prenom,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
	Adresse  string `json:"adresse,omitempty"`
}

// NewProductRequest is the catalog product creation payload.
type NewProductRequest struct {
	Libelle string  `json:"libelle"`
	Prix    float64 `json:"prix"`
	Stock   int     `json:"stock,omitempty"`
}

// OrderLineResponse is one order line on a detailed order.
type OrderLineResponse struct {
	ID           int64   `json:"id"`
	ProduitID    int64   `json:"produitId"`
	Qte          int     `json:"qte"`
	PrixUnitaire float64 `json:"prixUnitaire"`
}

// CourierResponse is the courier payload, standalone or nested in an order.
type CourierResponse struct {
	ID        int64  `json:"id"`
	Nom       string `json:"nom"`
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	UserID    *int64 `json:"userId,omitempty"`
}

// OrderSummaryResponse is one row of an order listing.
type OrderSummaryResponse struct {
	ID        int64  `json:"id"`
	ClientNom string `json:"clientNom"`
	Statut    string `json:"statut"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
	LivreurID *int64 `json:"livreurId,omitempty"`
}

// OrderDetailResponse is the full order payload with lines and courier.
type OrderDetailResponse struct {
	ID           int64               `json:"id"`
	Reference    string              `json:"reference"`
	ClientNom    string              `json:"clientNom"`
	Statut       string              `json:"statut"`
	Adresse      string              `json:"adresse"`
	Telephone    string              `json:"telephone"`
	Gouvernement string              `json:"gouvernement"`
	UserID       int64               `json:"userId"`
	Livreur      *CourierResponse    `json:"livreur,omitempty"`
	Lignes       []OrderLineResponse `json:"lignes"`
	Total        float64             `json:"total"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// UserResponse is the user payload returned on registration. The password
// hash and the verification code never leave the server; the code reaches
// the user out of band.
type UserResponse struct {
	ID       int64  `json:"id"`
	Nom      string `json:"nom,omitempty"`
	Prenom   string `json:"prenom,omitempty"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
	Adresse  string `json:"adresse,omitempty"`
	Verified bool   `json:"verified"`
}

// ProductResponse is the catalog product payload.
type ProductResponse struct {
	ID      int64   `json:"id"`
	Libelle string  `json:"libelle"`
	Prix    float64 `json:"prix"`
	Stock   int     `json:"stock"`
}
