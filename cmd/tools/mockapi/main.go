// mockapi is a stand-in for the remote mm-shop API, for developing the
// console without a backend. It speaks the same success/failure
// envelopes, checks the bearer token, paginates orders and accepts
// uploads. Data lives in memory and resets on restart.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const mockToken = "mock-token"

type variation struct {
	ID              string   `json:"id"`
	SKU             string   `json:"sku"`
	Sizes           []string `json:"sizes"`
	Colors          []string `json:"colors"`
	Price           float64  `json:"price"`
	DiscountPercent int      `json:"discountPercent"`
	StockQuantity   int      `json:"stockQuantity"`
	ImageURLs       []string `json:"imageUrls"`
}

type product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Brand       string      `json:"brand"`
	Description string      `json:"description"`
	Gender      string      `json:"gender"`
	CategoryID  string      `json:"categoryId"`
	OwnerID     string      `json:"ownerId"`
	Variations  []variation `json:"variations"`
}

type order struct {
	ID           string  `json:"id"`
	Status       string  `json:"status"`
	CustomerName string  `json:"customerName"`
	Total        float64 `json:"total"`
	ItemCount    int     `json:"itemCount"`
	CreatedAt    string  `json:"createdAt"`
}

type store struct {
	mu       sync.Mutex
	products []product
	orders   []order
}

func main() {
	addr := flag.String("addr", ":7081", "listen address")
	role := flag.String("role", "admin", "role returned by login")
	flag.Parse()

	s := &store{
		products: []product{
			{
				ID: uuid.NewString(), Name: "Linen Shirt", Brand: "Pehli", Gender: "men",
				Description: "Summer shirt", CategoryID: "cat-1", OwnerID: "user-1",
				Variations: []variation{{
					ID: uuid.NewString(), SKU: "LS-1", Sizes: []string{"M", "L"},
					Colors: []string{"white"}, Price: 39.90, StockQuantity: 12,
				}},
			},
		},
		orders: seedOrders(35),
	}

	r := gin.Default()

	r.POST("/api/auth/login", func(c *gin.Context) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&in); err != nil || in.Password == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		ok(c, gin.H{
			"token": mockToken,
			"role":  *role,
			"user":  gin.H{"id": "user-1", "name": "Mock Admin", "email": in.Email, "role": *role},
		})
	})
	r.POST("/api/auth/logout", func(c *gin.Context) { ok(c, gin.H{}) })

	authed := r.Group("", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer "+mockToken {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		}
	})

	authed.GET("/api/auth/profile", func(c *gin.Context) {
		ok(c, gin.H{"id": "user-1", "name": "Mock Admin", "email": "admin@mock", "role": *role})
	})
	authed.PUT("/api/auth/profile", func(c *gin.Context) { ok(c, gin.H{}) })

	authed.GET("/api/products", s.listProducts)
	authed.POST("/api/products", s.createProduct)
	authed.PUT("/api/products/:id", s.updateProduct)
	authed.DELETE("/api/products/:id", s.deleteProduct)
	authed.GET("/api/shop/products", s.listProducts)

	authed.GET("/api/categories", func(c *gin.Context) {
		// Named-member list shape on purpose, to exercise the tolerant decode.
		ok(c, gin.H{"categories": []gin.H{
			{"id": "cat-1", "name": "Shirts", "description": "Tops"},
			{"id": "cat-2", "name": "Shoes", "description": "Footwear"},
		}})
	})
	authed.POST("/api/categories", func(c *gin.Context) { ok(c, gin.H{}) })
	authed.PUT("/api/categories/:id", func(c *gin.Context) { ok(c, gin.H{}) })
	authed.DELETE("/api/categories/:id", func(c *gin.Context) { ok(c, gin.H{}) })

	authed.GET("/api/admin/users", func(c *gin.Context) {
		ok(c, gin.H{"users": []gin.H{
			{"id": "user-1", "name": "Mock Admin", "email": "admin@mock", "role": *role},
		}})
	})
	authed.PUT("/api/admin/users/:id", func(c *gin.Context) { ok(c, gin.H{}) })
	authed.DELETE("/api/admin/users/:id", func(c *gin.Context) { ok(c, gin.H{}) })
	authed.GET("/api/admin/roles", func(c *gin.Context) {
		ok(c, gin.H{"roles": []gin.H{
			{"name": "super_admin", "description": "Everything", "userCount": 1},
			{"name": "admin", "description": "Everything but roles", "userCount": 3},
			{"name": "shop_owner", "description": "Own shop only", "userCount": 12},
		}})
	})
	authed.GET("/api/admin/stats", s.stats)
	authed.GET("/api/shop/stats", s.stats)
	authed.GET("/api/shop/customers", func(c *gin.Context) {
		ok(c, gin.H{"customers": []gin.H{
			{"id": "cust-1", "name": "Jane", "email": "jane@mock", "orderCount": 4, "totalSpent": 310.5},
		}})
	})

	authed.GET("/api/orders", s.listOrders)
	authed.GET("/api/shop/orders", s.listOrders)
	authed.POST("/api/orders/:id/confirm", s.orderAction("confirmed"))
	authed.POST("/api/orders/:id/reject", s.orderAction("cancelled"))
	authed.PUT("/api/orders/:id/status", s.setOrderStatus)
	authed.POST("/api/shop/orders/:id/confirm", s.orderAction("confirmed"))
	authed.POST("/api/shop/orders/:id/reject", s.orderAction("cancelled"))
	authed.PUT("/api/shop/orders/:id/status", s.setOrderStatus)

	authed.POST("/api/upload", func(c *gin.Context) {
		f, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "image file required"})
			return
		}
		name := uuid.NewString() + "-" + f.Filename
		ok(c, gin.H{"url": "https://cdn.mock/" + name, "filename": name})
	})
	authed.DELETE("/api/upload/:filename", func(c *gin.Context) { ok(c, gin.H{}) })

	fmt.Println("mockapi listening on", *addr)
	_ = r.Run(*addr)
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (s *store) listProducts(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(c, s.products)
}

func (s *store) createProduct(c *gin.Context) {
	var p product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product payload"})
		return
	}
	p.ID = uuid.NewString()
	for i := range p.Variations {
		p.Variations[i].ID = uuid.NewString()
	}
	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()
	ok(c, p)
}

func (s *store) updateProduct(c *gin.Context) {
	var p product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product payload"})
		return
	}
	id := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p.ID = id
			s.products[i] = p
			ok(c, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
}

func (s *store) deleteProduct(c *gin.Context) {
	id := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			ok(c, gin.H{})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
}

func (s *store) stats(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok(c, gin.H{
		"products": len(s.products),
		"orders":   len(s.orders),
		"revenue":  1234.5,
	})
}

func (s *store) listOrders(c *gin.Context) {
	const pageSize = 10
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	status := c.Query("status")
	search := strings.ToLower(c.Query("search"))

	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]order, 0, len(s.orders))
	for _, o := range s.orders {
		if status != "" && o.Status != status {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(o.CustomerName), search) {
			continue
		}
		filtered = append(filtered, o)
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	start := (page - 1) * pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	pending := 0
	for _, o := range filtered {
		if o.Status == "pending" {
			pending++
		}
	}

	ok(c, gin.H{
		"items":      filtered[start:end],
		"pagination": gin.H{"page": page, "totalPages": totalPages},
		"stats":      gin.H{"total": len(filtered), "pending": pending},
	})
}

func (s *store) orderAction(to string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.setStatus(c, c.Param("id"), to)
	}
}

func (s *store) setOrderStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "status required"})
		return
	}
	s.setStatus(c, c.Param("id"), in.Status)
}

func (s *store) setStatus(c *gin.Context, id, to string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			if s.orders[i].Status == "completed" || s.orders[i].Status == "cancelled" {
				c.JSON(http.StatusConflict, gin.H{"message": "order is final"})
				return
			}
			s.orders[i].Status = to
			ok(c, s.orders[i])
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
}

func seedOrders(n int) []order {
	statuses := []string{"pending", "confirmed", "preparing", "in_delivery", "delivered", "completed", "cancelled"}
	out := make([]order, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, order{
			ID:           fmt.Sprintf("ord-%03d", i+1),
			Status:       statuses[i%len(statuses)],
			CustomerName: fmt.Sprintf("Customer %d", i+1),
			Total:        float64(20 + i*3),
			ItemCount:    1 + i%4,
			CreatedAt:    fmt.Sprintf("2025-08-%02d 12:00", 1+i%28),
		})
	}
	return out
}
