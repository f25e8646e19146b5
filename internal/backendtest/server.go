// internal/backendtest/server.go

// Package backendtest runs an in-memory rendition of the storefront REST
// backend for client tests. State lives in maps behind one mutex; nothing
// persists across instances.
package backendtest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Fixed credentials the fake gateway signs payments with
const (
	RazorpayKey    = "rzp_test_backendtest"
	RazorpaySecret = "backendtest-secret"
)

// Product is a catalog entry
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	CategoryID  int64   `json:"category_id"`
	ImageURL    string  `json:"image_url"`
}

// Category is a catalog category entry
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// Asset is a banner or logo image
type Asset struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
}

// CartLine is one persisted cart row
type CartLine struct {
	ProductID int64
	Quantity  int
}

// OrderItem is one persisted order line
type OrderItem struct {
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

// Order is one persisted order
type Order struct {
	ID                 int64       `json:"id"`
	UserID             string      `json:"-"`
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	Phone              string      `json:"phone"`
	Address            string      `json:"address"`
	Status             string      `json:"status"`
	PaymentStatus      string      `json:"payment_status"`
	PaymentMethod      string      `json:"payment_method"`
	TrackingID         string      `json:"tracking_id"`
	CourierName        string      `json:"courier_name,omitempty"`
	CourierTrackingURL string      `json:"courier_tracking_url,omitempty"`
	OrderDate          time.Time   `json:"order_date"`
	TotalPrice         float64     `json:"total_price"`
	Items              []OrderItem `json:"items"`
}

// User is a registered account
type User struct {
	ID       int64
	FullName string
	Email    string
	Phone    string
	Password string
	IsAdmin  bool
	Address  string
}

// Server is the fake backend plus its HTTP listener
type Server struct {
	mu sync.Mutex

	users      map[int64]*User
	products   map[int64]*Product
	categories map[int64]*Category
	banners    map[int64]*Asset
	logos      map[int64]*Asset
	carts      map[string][]CartLine
	wishlists  map[string]map[int64]bool
	orders     map[int64]*Order
	addresses  map[string][]string
	invoices   []int64 // order ids an invoice email was requested for

	nextUserID     int64
	nextProductID  int64
	nextCategoryID int64
	nextAssetID    int64
	nextOrderID    int64
	nextGatewayID  int64

	httpServer *httptest.Server
}

// New starts a fake backend and returns it ready to serve
func New() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		users:          make(map[int64]*User),
		products:       make(map[int64]*Product),
		categories:     make(map[int64]*Category),
		banners:        make(map[int64]*Asset),
		logos:          make(map[int64]*Asset),
		carts:          make(map[string][]CartLine),
		wishlists:      make(map[string]map[int64]bool),
		orders:         make(map[int64]*Order),
		addresses:      make(map[string][]string),
		nextUserID:     1,
		nextProductID:  1,
		nextCategoryID: 1,
		nextAssetID:    1,
		nextOrderID:    1,
		nextGatewayID:  1,
	}

	s.httpServer = httptest.NewServer(s.router())
	return s
}

// URL is the backend's base URL
func (s *Server) URL() string {
	return s.httpServer.URL
}

// Close shuts the listener down
func (s *Server) Close() {
	s.httpServer.Close()
}

// SeedUser registers an account and returns its id
func (s *Server) SeedUser(fullName, email, password string, isAdmin bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextUserID
	s.nextUserID++
	s.users[id] = &User{
		ID:       id,
		FullName: fullName,
		Email:    email,
		Password: password,
		IsAdmin:  isAdmin,
	}
	return id
}

// SeedProduct adds a catalog product and returns its id
func (s *Server) SeedProduct(name, category string, price float64, stock int) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextProductID
	s.nextProductID++
	s.products[id] = &Product{
		ID:         id,
		Name:       name,
		Category:   category,
		CategoryID: s.categoryID(category),
		Price:      price,
		Quantity:   stock,
	}
	return id
}

// categoryID finds or creates the category by name. Caller holds the lock.
func (s *Server) categoryID(name string) int64 {
	for _, cat := range s.categories {
		if cat.Name == name {
			return cat.ID
		}
	}
	id := s.nextCategoryID
	s.nextCategoryID++
	s.categories[id] = &Category{ID: id, Name: name}
	return id
}

// SeedBanner adds a homepage banner and returns its id
func (s *Server) SeedBanner(imageURL string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextAssetID
	s.nextAssetID++
	s.banners[id] = &Asset{ID: id, ImageURL: imageURL}
	return id
}

// SeedLogo adds a store logo and returns its id
func (s *Server) SeedLogo(imageURL string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextAssetID
	s.nextAssetID++
	s.logos[id] = &Asset{ID: id, ImageURL: imageURL}
	return id
}

// SeedCart puts a line straight into a user's cart
func (s *Server) SeedCart(userID string, productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[userID] = append(s.carts[userID], CartLine{ProductID: productID, Quantity: quantity})
}

// SeedWishlist puts a product straight into a user's wishlist
func (s *Server) SeedWishlist(userID string, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wishlists[userID] == nil {
		s.wishlists[userID] = make(map[int64]bool)
	}
	s.wishlists[userID][productID] = true
}

// Cart returns a copy of a user's persisted cart lines
func (s *Server) Cart(userID string) []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CartLine(nil), s.carts[userID]...)
}

// Wishlist returns a user's persisted wishlist product ids
func (s *Server) Wishlist(userID string) []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []int64
	for id := range s.wishlists[userID] {
		ids = append(ids, id)
	}
	return ids
}

// Order returns a persisted order by id, or nil
func (s *Server) Order(orderID int64) *Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[orderID]; ok {
		clone := *o
		return &clone
	}
	return nil
}

// InvoiceRequests returns the order ids invoice emails were requested for
func (s *Server) InvoiceRequests() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int64(nil), s.invoices...)
}

// SavedAddresses returns a user's saved addresses
func (s *Server) SavedAddresses(userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.addresses[userID]...)
}

// SignPayment produces the signature the verify endpoint accepts
func SignPayment(gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(RazorpaySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Server) router() *gin.Engine {
	r := gin.New()

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", s.login)
		auth.POST("/send-otp", okHandler)
		auth.POST("/verify-otp", okHandler)
		auth.POST("/forgot-password", okHandler)
		auth.POST("/reset-password/:token", okHandler)
	}

	r.GET("/api/categories", s.listCategories)
	r.GET("/api/products/:category", s.listProducts)

	r.GET("/api/banners", s.listBanners)
	r.POST("/api/banners/upload", s.uploadBanner)
	r.DELETE("/api/banners/:id", s.deleteBanner)
	r.GET("/api/logos", s.listLogos)
	r.POST("/api/logos/upload", s.uploadLogo)
	r.DELETE("/api/logos/:id", s.deleteLogo)

	r.POST("/api/upload/products", uploadFileHandler("products"))
	r.POST("/api/upload/categories", uploadFileHandler("categories"))

	r.GET("/api/cart/:userId", s.getCart)
	r.POST("/api/cart", s.addToCart)
	r.DELETE("/api/cart", s.removeFromCart)

	r.GET("/api/wishlist/:userId", s.getWishlist)
	r.POST("/api/wishlist", s.addToWishlist)
	r.DELETE("/api/wishlist", s.removeFromWishlist)

	orderGroup := r.Group("/api/order")
	{
		orderGroup.POST("/place", s.placeOrder)
		orderGroup.GET("/user/:userId", s.listOrders)
		orderGroup.PATCH("/:id/cancel", s.cancelOrder)
		orderGroup.GET("/track/:trackingId", s.trackOrder)
		orderGroup.POST("/email-invoice", s.emailInvoice)
	}

	paymentGroup := r.Group("/api/payment")
	{
		paymentGroup.GET("/razorpay-key", s.razorpayKey)
		paymentGroup.POST("/razorpay-order", s.razorpayOrder)
		paymentGroup.POST("/verify-payment", s.verifyPayment)
	}

	r.GET("/api/profile/:userId", s.getProfile)
	r.POST("/api/profile/edit", s.editProfile)
	r.GET("/api/user-addresses/:userId", s.getAddresses)
	r.POST("/api/user-addresses", s.saveAddress)

	adminGroup := r.Group("/api/admin")
	{
		adminGroup.GET("/products", s.adminListProducts)
		adminGroup.POST("/products", s.adminCreateProduct)
		adminGroup.PUT("/products/:id", s.adminUpdateProduct)
		adminGroup.DELETE("/products/:id", s.adminDeleteProduct)
		adminGroup.GET("/categories", s.adminListCategories)
		adminGroup.POST("/categories", s.adminCreateCategory)
		adminGroup.PUT("/categories/:id", s.adminUpdateCategory)
		adminGroup.DELETE("/categories/:id", s.adminDeleteCategory)
		adminGroup.GET("/users", s.adminListUsers)
		adminGroup.DELETE("/users/:id", s.adminDeleteUser)
		adminGroup.GET("/orders/orders-with-items", s.adminListOrders)
		adminGroup.GET("/orders/pending", s.adminPendingOrders)
		adminGroup.GET("/orders/stats", s.adminOrderStats)
		adminGroup.PUT("/orders/:id/status", s.adminUpdateOrderStatus)
		adminGroup.PUT("/orders/:id/payment-status", s.adminUpdatePaymentStatus)
		adminGroup.GET("/dashboard", s.adminDashboard)
		adminGroup.GET("/dashboard/low-stock-products", s.adminLowStock)
		adminGroup.GET("/dashboard/out-of-stock-products", s.adminOutOfStock)
	}

	return r
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// uploadFileHandler accepts a multipart image and answers with the URL the
// file would be served from. Nothing is written to disk.
func uploadFileHandler(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": fmt.Sprintf("/uploads/%s/%s", kind, file.Filename)})
	}
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == req.Email && u.Password == req.Password {
			c.JSON(http.StatusOK, gin.H{
				"message": "Login successful",
				"user": gin.H{
					"id":       u.ID,
					"email":    u.Email,
					"is_admin": u.IsAdmin,
				},
			})
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
}

// sortedCategories returns the categories ordered by id. Caller holds the lock.
func (s *Server) sortedCategories() []*Category {
	out := make([]*Category, 0, len(s.categories))
	for _, cat := range s.categories {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) listCategories(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.sortedCategories())
}

func sortedAssets(assets map[int64]*Asset) []*Asset {
	out := make([]*Asset, 0, len(assets))
	for _, a := range assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) listBanners(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, sortedAssets(s.banners))
}

func (s *Server) listLogos(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, sortedAssets(s.logos))
}

func (s *Server) uploadBanner(c *gin.Context) {
	s.uploadAsset(c, s.banners, "banners")
}

func (s *Server) uploadLogo(c *gin.Context) {
	s.uploadAsset(c, s.logos, "logos")
}

func (s *Server) uploadAsset(c *gin.Context, assets map[int64]*Asset, kind string) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextAssetID
	s.nextAssetID++
	url := fmt.Sprintf("/uploads/%s/%s", kind, file.Filename)
	assets[id] = &Asset{ID: id, ImageURL: url}
	c.JSON(http.StatusOK, gin.H{"id": id, "url": url})
}

func (s *Server) deleteBanner(c *gin.Context) {
	s.deleteAsset(c, s.banners)
}

func (s *Server) deleteLogo(c *gin.Context) {
	s.deleteAsset(c, s.logos)
}

func (s *Server) deleteAsset(c *gin.Context, assets map[int64]*Asset) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(assets, id)
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

func (s *Server) listProducts(c *gin.Context) {
	category := c.Param("category")

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getCart(c *gin.Context) {
	userID := c.Param("userId")

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]gin.H, 0)
	for _, line := range s.carts[userID] {
		p, ok := s.products[line.ProductID]
		if !ok {
			continue
		}
		out = append(out, gin.H{
			"product_id":  p.ID,
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"quantity":    line.Quantity,
			"stock":       p.Quantity,
			"image_url":   p.ImageURL,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) addToCart(c *gin.Context) {
	var req struct {
		UserID    string `json:"userId"`
		ProductID int64  `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[req.ProductID]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	for i, line := range s.carts[req.UserID] {
		if line.ProductID == req.ProductID {
			s.carts[req.UserID][i].Quantity = req.Quantity
			c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
			return
		}
	}
	s.carts[req.UserID] = append(s.carts[req.UserID], CartLine{ProductID: req.ProductID, Quantity: req.Quantity})
	c.JSON(http.StatusOK, gin.H{"message": "Added to cart"})
}

// removeFromCart accepts both the single-product and the bulk payload
func (s *Server) removeFromCart(c *gin.Context) {
	var req struct {
		UserID     string  `json:"userId"`
		ProductID  int64   `json:"productId"`
		ProductIDs []int64 `json:"productIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	remove := make(map[int64]bool)
	if req.ProductID != 0 {
		remove[req.ProductID] = true
	}
	for _, id := range req.ProductIDs {
		remove[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []CartLine
	for _, line := range s.carts[req.UserID] {
		if !remove[line.ProductID] {
			kept = append(kept, line)
		}
	}
	s.carts[req.UserID] = kept
	c.JSON(http.StatusOK, gin.H{"message": "Removed from cart"})
}

func (s *Server) getWishlist(c *gin.Context) {
	userID := c.Param("userId")

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]gin.H, 0)
	for id := range s.wishlists[userID] {
		p, ok := s.products[id]
		if !ok {
			continue
		}
		out = append(out, gin.H{
			"id":        p.ID,
			"name":      p.Name,
			"price":     p.Price,
			"quantity":  p.Quantity,
			"image_url": p.ImageURL,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) addToWishlist(c *gin.Context) {
	var req struct {
		UserID    string `json:"userId"`
		ProductID int64  `json:"productId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wishlists[req.UserID] == nil {
		s.wishlists[req.UserID] = make(map[int64]bool)
	}
	s.wishlists[req.UserID][req.ProductID] = true
	c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist"})
}

func (s *Server) removeFromWishlist(c *gin.Context) {
	var req struct {
		UserID    string `json:"userId"`
		ProductID int64  `json:"productId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wishlists[req.UserID], req.ProductID)
	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist"})
}

func (s *Server) placeOrder(c *gin.Context) {
	var req struct {
		UserID        string  `json:"userId"`
		Name          string  `json:"name"`
		Phone         string  `json:"phone"`
		Email         string  `json:"email"`
		Address       string  `json:"address"`
		PaymentMethod string  `json:"paymentMethod"`
		TotalPrice    float64 `json:"totalPrice"`
		Items         []struct {
			ProductID    int64   `json:"productId"`
			Quantity     int     `json:"quantity"`
			Price        float64 `json:"price"`
			ProductName  string  `json:"productName"`
			ProductImage string  `json:"productImage"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextOrderID
	s.nextOrderID++

	o := &Order{
		ID:            id,
		UserID:        req.UserID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Status:        "Pending",
		PaymentStatus: "Unpaid",
		PaymentMethod: req.PaymentMethod,
		OrderDate:     time.Now(),
		TotalPrice:    req.TotalPrice,
	}
	for _, item := range req.Items {
		o.Items = append(o.Items, OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Price:        item.Price,
			Quantity:     item.Quantity,
		})
	}
	s.orders[id] = o
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "orderId": id})
}

func (s *Server) listOrders(c *gin.Context) {
	userID := c.Param("userId")

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	c.JSON(http.StatusOK, gin.H{"orders": out})
}

func (s *Server) cancelOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if o.Status != "Pending" {
		c.JSON(http.StatusConflict, gin.H{"error": "Order cannot be cancelled"})
		return
	}
	o.Status = "Canceled"
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
}

func (s *Server) trackOrder(c *gin.Context) {
	trackingID := c.Param("trackingId")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.TrackingID == trackingID && o.Status != "Canceled" {
			c.JSON(http.StatusOK, gin.H{"success": true, "order": o})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": false, "message": "No order found for this tracking ID"})
}

func (s *Server) emailInvoice(c *gin.Context) {
	var req struct {
		OrderID int64  `json:"orderId"`
		UserID  string `json:"userId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[req.OrderID]
	if !ok || o.UserID != req.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	s.invoices = append(s.invoices, req.OrderID)
	c.JSON(http.StatusOK, gin.H{"message": "Invoice sent"})
}

func (s *Server) razorpayKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"key": RazorpayKey})
}

func (s *Server) razorpayOrder(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	s.mu.Lock()
	id := s.nextGatewayID
	s.nextGatewayID++
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"id":       fmt.Sprintf("order_test_%d", id),
		"amount":   int64(req.Amount * 100),
		"currency": "INR",
	})
}

func (s *Server) verifyPayment(c *gin.Context) {
	var req struct {
		RazorpayOrderID   string  `json:"razorpay_order_id"`
		RazorpayPaymentID string  `json:"razorpay_payment_id"`
		RazorpaySignature string  `json:"razorpay_signature"`
		OrderID           int64   `json:"orderId"`
		Amount            float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	expected := SignPayment(req.RazorpayOrderID, req.RazorpayPaymentID)
	if !hmac.Equal([]byte(expected), []byte(req.RazorpaySignature)) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Signature verification failed"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[req.OrderID]; ok {
		o.PaymentStatus = "Paid"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment verified"})
}

func (s *Server) getProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":   strconv.FormatInt(u.ID, 10),
		"full_name": u.FullName,
		"email":     u.Email,
		"phone":     u.Phone,
		"address":   u.Address,
	})
}

func (s *Server) editProfile(c *gin.Context) {
	userID := c.PostForm("user_id")
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if v := c.PostForm("full_name"); v != "" {
		u.FullName = v
	}
	if v := c.PostForm("phone"); v != "" {
		u.Phone = v
	}
	if v := c.PostForm("address"); v != "" {
		u.Address = v
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func (s *Server) getAddresses(c *gin.Context) {
	userID := c.Param("userId")

	s.mu.Lock()
	defer s.mu.Unlock()
	addresses := s.addresses[userID]
	if addresses == nil {
		addresses = []string{}
	}
	c.JSON(http.StatusOK, addresses)
}

func (s *Server) saveAddress(c *gin.Context) {
	var req struct {
		UserID  string `json:"userId"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.addresses[req.UserID] = append(s.addresses[req.UserID], req.Address)
	c.JSON(http.StatusCreated, gin.H{"message": "Address saved"})
}

func (s *Server) adminListProducts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) adminCreateProduct(c *gin.Context) {
	var req Product
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	req.ID = s.nextProductID
	s.nextProductID++
	s.products[req.ID] = &req
	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "id": req.ID})
}

func (s *Server) adminUpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var req Product
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	req.ID = id
	s.products[id] = &req
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

func (s *Server) adminDeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func (s *Server) adminListCategories(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.sortedCategories())
}

func (s *Server) adminCreateCategory(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		ImageURL string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextCategoryID
	s.nextCategoryID++
	s.categories[id] = &Category{ID: id, Name: req.Name, ImageURL: req.ImageURL}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "id": id})
}

func (s *Server) adminUpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}
	var req struct {
		Name     string `json:"name"`
		ImageURL string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cat, ok := s.categories[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if req.Name != "" {
		cat.Name = req.Name
	}
	if req.ImageURL != "" {
		cat.ImageURL = req.ImageURL
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated"})
}

func (s *Server) adminDeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.categories, id)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}

func (s *Server) adminListUsers(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]gin.H, 0, len(s.users))
	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		u := s.users[id]
		out = append(out, gin.H{
			"id":        u.ID,
			"full_name": u.FullName,
			"email":     u.Email,
			"phone":     u.Phone,
			"is_admin":  u.IsAdmin,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

func (s *Server) adminDeleteUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// sortedOrders returns the orders ordered by id. Caller holds the lock.
func (s *Server) sortedOrders() []*Order {
	out := make([]*Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Server) adminListOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.sortedOrders())
}

func (s *Server) adminPendingOrders(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Order, 0)
	for _, o := range s.sortedOrders() {
		if o.Status == "Pending" {
			out = append(out, o)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) adminOrderStats(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, o := range s.orders {
		counts[o.Status]++
	}
	c.JSON(http.StatusOK, counts)
}

func (s *Server) adminUpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	var req struct {
		Status             string `json:"status"`
		TrackingID         string `json:"tracking_id"`
		CourierName        string `json:"courier_name"`
		CourierTrackingURL string `json:"courier_tracking_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	o.Status = req.Status
	if req.TrackingID != "" {
		o.TrackingID = req.TrackingID
	}
	if req.CourierName != "" {
		o.CourierName = req.CourierName
	}
	if req.CourierTrackingURL != "" {
		o.CourierTrackingURL = req.CourierTrackingURL
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

func (s *Server) adminUpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	var req struct {
		PaymentStatus string `json:"payment_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PaymentStatus == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	o.PaymentStatus = req.PaymentStatus
	c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
}

func (s *Server) adminDashboard(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var revenue float64
	for _, o := range s.orders {
		if o.Status != "Canceled" {
			revenue += o.TotalPrice
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":   len(s.orders),
		"users":    len(s.users),
		"products": len(s.products),
		"revenue":  revenue,
	})
}

const lowStockThreshold = 5

func (s *Server) adminLowStock(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Product, 0)
	for _, p := range s.products {
		if p.Quantity > 0 && p.Quantity <= lowStockThreshold {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) adminOutOfStock(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Product, 0)
	for _, p := range s.products {
		if p.Quantity == 0 {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}
