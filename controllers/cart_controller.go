package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mconrado/fast-ecommerce-back/models"
	"github.com/mconrado/fast-ecommerce-back/services"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// @Summary Create or fetch cart
// @Description Return the cached cart for the given uuid, or create a new empty cart
// @Tags Cart
// @Produce json
// @Param uuid query string false "Cart UUID"
// @Success 200 {object} models.Response
// @Router /cart [post]
func (ctrl *CartController) GetOrCreateCart(c *gin.Context) {
	cart, err := ctrl.carts.GetOrCreateCart(c.Request.Context(), c.Query("uuid"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart retrieved", Data: cart})
}

// @Summary Add product to cart
// @Description Add a product to the cart identified by uuid, creating the cart when absent
// @Tags Cart
// @Accept json
// @Produce json
// @Param uuid query string false "Cart UUID"
// @Param request body models.AddProductRequest true "Product and quantity"
// @Success 201 {object} models.Response
// @Router /cart/product [post]
func (ctrl *CartController) AddProduct(c *gin.Context) {
	var req models.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	cart, err := ctrl.carts.AddProduct(c.Request.Context(), c.Query("uuid"), req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Product added to cart", Data: cart})
}

// @Summary Recompute cart pricing
// @Description Reconcile the cart against catalog prices, coupon and freight, then recompute totals
// @Tags Cart
// @Accept json
// @Produce json
// @Param uuid path string true "Cart UUID"
// @Param cart body models.Cart true "Cart representation"
// @Success 200 {object} models.Response
// @Router /cart/{uuid}/estimate [post]
func (ctrl *CartController) CalculateCart(c *gin.Context) {
	var cart models.Cart
	if err := c.ShouldBindJSON(&cart); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid cart representation",
			Error:   err.Error(),
		})
		return
	}

	priced, err := ctrl.carts.CalculateCart(c.Request.Context(), c.Param("uuid"), &cart)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart calculated", Data: priced})
}

// @Summary Set line item quantity
// @Description Overwrite a line item's quantity, zero removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param uuid path string true "Cart UUID"
// @Param product_id path int true "Product ID"
// @Param request body models.SetQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/{uuid}/product/{product_id} [patch]
func (ctrl *CartController) SetQuantity(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	var req models.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	cart, err := ctrl.carts.SetQuantity(c.Request.Context(), c.Param("uuid"), productID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Quantity updated", Data: cart})
}

// @Summary Remove product from cart
// @Tags Cart
// @Produce json
// @Param uuid path string true "Cart UUID"
// @Param product_id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/{uuid}/product/{product_id} [delete]
func (ctrl *CartController) RemoveProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product id"})
		return
	}

	cart, err := ctrl.carts.RemoveProduct(c.Request.Context(), c.Param("uuid"), productID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product removed", Data: cart})
}
