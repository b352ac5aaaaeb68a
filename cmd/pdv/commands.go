package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"nextpdv/internal/analytics"
	"nextpdv/internal/cart"
	"nextpdv/internal/checkout"
	"nextpdv/internal/models"
	"nextpdv/internal/orders"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func dashboardCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "indicadores de vendas do período",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "periodo", Value: string(analytics.PeriodDay), Usage: "dia, 7dias, mes ou todos"},
			&cli.BoolFlag{Name: "comparar", Usage: "compara com o período anterior"},
		},
		Action: func(c *cli.Context) error {
			period, err := analytics.ParsePeriod(c.String("periodo"))
			if err != nil {
				return err
			}
			board := analytics.NewBoard(
				analytics.NewAggregator(e.cfg.DeliveryTag),
				analytics.NewStockPolicy(e.cfg.ReferenceCapacity),
				c.Bool("comparar"),
			)
			data, err := e.client.LoadDashboardData(c.Context)
			if err != nil {
				return err
			}
			board.Load(data.Sales, data.Products)
			printSnapshot(board.Select(period))

			if n := len(board.Critical()); n > 0 {
				fmt.Printf("\n%d produto(s) com estoque crítico, veja `pdv criticos`\n", n)
			}
			return nil
		},
	}
}

func criticalCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "criticos",
		Usage: "produtos com metade ou mais das numerações zeradas",
		Action: func(c *cli.Context) error {
			products, err := e.client.ListProducts(c.Context)
			if err != nil {
				return err
			}
			policy := analytics.NewStockPolicy(e.cfg.ReferenceCapacity)
			printAlerts(policy.Critical(products), policy.LowStock(products))
			return nil
		},
	}
}

func sellCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "vender",
		Usage: "monta o carrinho e finaliza a venda (ou agenda um pedido)",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "item", Usage: "VARIACAO:QTD, pode repetir"},
			&cli.StringSliceFlag{Name: "manual", Usage: "NOME:PRECO:QTD, pode repetir; item sem variação não finaliza venda, só entra no total (use --orcamento)"},
			&cli.BoolFlag{Name: "orcamento", Usage: "só calcula os totais do carrinho, sem enviar nada"},
			&cli.StringFlag{Name: "pagamento", Value: models.PaymentCash},
			&cli.BoolFlag{Name: "entrega", Usage: "venda com entrega"},
			&cli.StringFlag{Name: "taxa", Value: "0", Usage: "taxa de entrega"},
			&cli.StringFlag{Name: "entregador"},
			&cli.StringFlag{Name: "desconto", Value: "0"},
			&cli.UintFlag{Name: "cliente", Usage: "id de cliente existente"},
			&cli.StringFlag{Name: "novo-cliente", Usage: "nome para cadastrar um cliente novo"},
			&cli.StringFlag{Name: "telefone"},
			&cli.StringFlag{Name: "endereco"},
			&cli.StringFlag{Name: "agendar", Usage: "AAAA-MM-DD, cria um pedido agendado em vez da venda"},
			&cli.BoolFlag{Name: "confirmar", Usage: "com --agendar, confirma o pedido na hora"},
		},
		Action: func(c *cli.Context) error {
			session := cart.NewSession()

			if items := c.StringSlice("item"); len(items) > 0 {
				products, err := e.client.ListProducts(c.Context)
				if err != nil {
					return err
				}
				for _, raw := range items {
					line, err := catalogItem(products, raw)
					if err != nil {
						return err
					}
					if line.Stock != nil && line.Quantity > *line.Stock {
						e.log.Warn("quantidade acima do estoque", zap.String("produto", line.Name), zap.Int("estoque", *line.Stock))
					}
					session.Add(line)
				}
			}
			for _, raw := range c.StringSlice("manual") {
				name, price, qty, err := parseManual(raw)
				if err != nil {
					return err
				}
				if err := session.AddManual(name, price, qty); err != nil {
					return err
				}
			}

			req, err := checkoutRequest(c, e.cfg.DeliveryTag)
			if err != nil {
				return err
			}

			if c.Bool("orcamento") {
				printTotals("Orçamento", quote(session.Lines(), req))
				return nil
			}
			svc := checkout.NewService(e.client)

			if day := c.String("agendar"); day != "" {
				date, err := time.ParseInLocation("2006-01-02", day, time.Local)
				if err != nil {
					return fmt.Errorf("data inválida %q, use AAAA-MM-DD", day)
				}
				res, err := svc.ScheduleOrder(c.Context, session.Cart(), req, &date, c.Bool("confirmar"))
				if err != nil {
					return err
				}
				fmt.Printf("Pedido #%d %s, total %s\n", res.Order.ID, res.Order.Status, brl(res.Totals.Final))
				session.Clear()
				return nil
			}

			res, err := svc.Finalize(c.Context, session.Cart(), req)
			if err != nil {
				return err
			}
			session.Clear()
			printTotals(fmt.Sprintf("Venda #%d registrada", res.Sale.ID), res.Totals)
			return nil
		},
	}
}

func checkoutRequest(c *cli.Context, deliveryTag string) (checkout.Request, error) {
	fee, err := decimal.NewFromString(c.String("taxa"))
	if err != nil {
		return checkout.Request{}, fmt.Errorf("taxa inválida: %q", c.String("taxa"))
	}
	discount, err := decimal.NewFromString(c.String("desconto"))
	if err != nil {
		return checkout.Request{}, fmt.Errorf("desconto inválido: %q", c.String("desconto"))
	}

	req := checkout.Request{
		PaymentMethod: c.String("pagamento"),
		Delivery:      cart.Delivery{Type: models.DeliveryTypePickup, Tag: deliveryTag},
		Discount:      discount,
		Policy:        cart.ClampDiscount,
		Address:       c.String("endereco"),
	}
	if c.Bool("entrega") {
		req.Delivery = cart.Delivery{Type: deliveryTag, Fee: fee, Courier: c.String("entregador"), Tag: deliveryTag}
	}
	if c.IsSet("cliente") {
		id := c.Uint("cliente")
		req.CustomerID = &id
	} else if name := c.String("novo-cliente"); name != "" {
		req.NewCustomer = &checkout.NewCustomer{Name: name, Phone: c.String("telefone")}
	}
	return req, nil
}

func importStockCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "importar-estoque",
		Usage:     "atualiza o estoque a partir de uma planilha .xlsx (código, numeração, estoque)",
		ArgsUsage: "ARQUIVO.xlsx",
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				return fmt.Errorf("informe o arquivo .xlsx")
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			res, err := e.client.ImportStock(c.Context, filepath.Base(path), f)
			if err != nil {
				return err
			}
			fmt.Printf("%d numerações atualizadas, %d criadas\n", res.Updated, res.Created)
			for _, key := range res.Unmatched {
				e.log.Warn("produto não encontrado", zap.String("chave", key))
			}
			for _, msg := range res.Invalid {
				e.log.Warn("linha ignorada", zap.String("motivo", msg))
			}
			return nil
		},
	}
}

func ordersCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "pedidos",
		Usage: "pedidos agendados por data de entrega",
		Action: func(c *cli.Context) error {
			list, err := e.client.ListOrders(c.Context)
			if err != nil {
				return err
			}
			g := orders.Group(list, time.Now())
			printOrders("Atrasados", g.Overdue)
			printOrders("Hoje", g.Today)
			printOrders("Próximos", g.Upcoming)
			printOrders("Sem data", g.Undated)
			return nil
		},
	}
}

func printTotals(title string, t cart.Totals) {
	fmt.Println(title)
	fmt.Printf("  Produtos:    %s\n", brl(t.Products))
	fmt.Printf("  Com entrega: %s\n", brl(t.WithDelivery))
	fmt.Printf("  Desconto:    %s\n", brl(t.Discount))
	fmt.Printf("  Total:       %s\n", brl(t.Final))
}

func printSnapshot(s analytics.Snapshot) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Período\t%s\n", s.Period)
	if s.Window != nil {
		fmt.Fprintf(w, "Janela\t%s a %s\n", s.Window.Start.Format("02/01/2006"), s.Window.End.AddDate(0, 0, -1).Format("02/01/2006"))
	}
	fmt.Fprintf(w, "Vendas\t%d\n", s.SalesCount)
	fmt.Fprintf(w, "Faturamento\t%s\n", brl(s.TotalRevenue))
	fmt.Fprintf(w, "Produtos vendidos\t%d\n", s.UnitsSold)
	fmt.Fprintf(w, "Ticket médio\t%s\n", brl(s.AverageTicket))
	fmt.Fprintf(w, "Lucro estimado\t%s\n", brl(s.EstimatedProfit))
	fmt.Fprintf(w, "Clientes atendidos\t%d\n", s.CustomersServed)
	fmt.Fprintf(w, "Entregas\t%d (%s em taxas)\n", s.DeliveryCount, brl(s.DeliveryFeesTotal))
	fmt.Fprintf(w, "Pagamento mais usado\t%s\n", s.MostUsedPaymentMethod)
	if s.Comparison != nil {
		ch := s.Comparison.Changes
		fmt.Fprintf(w, "Variação faturamento\t%s%%\n", ch.Revenue.StringFixed(1))
		fmt.Fprintf(w, "Variação vendas\t%s%%\n", ch.SalesCount.StringFixed(1))
	}
	_ = w.Flush()

	if len(s.BestSellers) > 0 {
		fmt.Println("\nMais vendidos:")
		for i, r := range s.BestSellers {
			fmt.Printf("  %d. %s (%d)\n", i+1, r.Name, r.Quantity)
		}
	}
}

func printAlerts(critical, low []analytics.StockAlert) {
	if len(critical) == 0 {
		fmt.Println("Nenhum produto com estoque crítico.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tProduto\tCódigo\tZeradas\tEstoque\tGrade")
	for _, a := range critical {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d/%d\t%d\t%d%%\n", a.ProductID, a.Name, a.Code, a.ZeroStock, a.Variants, a.Total, a.Percent)
	}
	_ = w.Flush()
	if len(low) > 0 {
		fmt.Printf("\n%d com estoque total abaixo da metade da grade.\n", len(low))
	}
}

func printOrders(title string, list []models.Order) {
	if len(list) == 0 {
		return
	}
	fmt.Printf("%s (%d)\n", title, len(list))
	for _, o := range list {
		who := "sem cliente"
		if o.Customer != nil {
			who = o.Customer.Name
		}
		when := "-"
		if o.DeliveryDate != nil {
			when = o.DeliveryDate.Format("02/01/2006")
		}
		fmt.Printf("  #%d  %s  %s  %s  %s\n", o.ID, when, who, o.Status, brl(o.Total))
	}
}
