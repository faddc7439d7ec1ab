package auth

// Route patterns as registered on the chi router. Permission lookups use the
// matched pattern, never the resolved URL.
const (
	RouteUsers         = "/users"
	RouteInternalUsers = "/users/internal"
	RouteUsersByRole   = "/users/find/{role}"

	RouteProducts       = "/products"
	RouteProductsFind   = "/products/find"
	RouteProductsUpdate = "/products/update"
	RouteProductsDelete = "/products/delete"

	RouteOrders                = "/orders"
	RouteOrder                 = "/orders/{orderId}"
	RouteCustomerOrders        = "/orders/customer/{customerId}"
	RouteCustomerCurrentOrders = "/orders/customer/{customerId}/current"
	RouteOrdersByStatus        = "/orders/status/{status}"
	RouteOrdersBetween         = "/orders/between/{startDate}/{endDate}"
)
