package render

const (
	htmlBasic = `<p><strong>Order UID:</strong> {{.OrderUID}}</p>
<p><strong>Track Number:</strong> {{.TrackNumber}}</p>
<p><strong>Entry:</strong> {{.Entry}}</p>
<p><strong>Customer ID:</strong> {{.CustomerID}}</p>
<p><strong>Delivery Service:</strong> {{.DeliveryService}}</p>
<p><strong>Date Created:</strong> {{created .DateCreated}}</p>
`
	htmlDelivery = `<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Address:</strong> {{address .}}</p>
`
	htmlPayment = `<p><strong>Transaction:</strong> {{.TransactionID}}</p>
<p><strong>Amount:</strong> {{money .Amount}}</p>
<p><strong>Currency:</strong> {{.Currency}}</p>
<p><strong>Provider:</strong> {{.Provider}}</p>
<p><strong>Bank:</strong> {{.Bank}}</p>
<p><strong>Payment Date:</strong> {{paid .PaymentDT}}</p>
`
	htmlItem = `<div class="item">
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Brand:</strong> {{.Brand}}</p>
<p><strong>Price:</strong> {{money .Price}}</p>
<p><strong>Total Price:</strong> {{money .TotalPrice}}</p>
<p><strong>Sale:</strong> {{sale .Sale}}</p>
<p><strong>Status:</strong> {{.Status}}</p>
</div>
`
)

const (
	textBasic = `Order UID: {{.OrderUID}}
Track Number: {{.TrackNumber}}
Entry: {{.Entry}}
Customer ID: {{.CustomerID}}
Delivery Service: {{.DeliveryService}}
Date Created: {{created .DateCreated}}
`
	textDelivery = `Name: {{.Name}}
Phone: {{.Phone}}
Email: {{.Email}}
Address: {{address .}}
`
	textPayment = `Transaction: {{.TransactionID}}
Amount: {{money .Amount}}
Currency: {{.Currency}}
Provider: {{.Provider}}
Bank: {{.Bank}}
Payment Date: {{paid .PaymentDT}}
`
	textItem = `- Name: {{.Name}}
  Brand: {{.Brand}}
  Price: {{money .Price}}
  Total Price: {{money .TotalPrice}}
  Sale: {{sale .Sale}}
  Status: {{.Status}}
`
)
